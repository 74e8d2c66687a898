package tags

import "strings"

// Parse converts a list of key=value pairs into Tags. The value is everything
// after the first '=', entries without a '=' are ignored.
func Parse(raw []string) Tags {
	t := Tags{}
	for _, r := range raw {
		parts := strings.SplitN(strings.TrimSpace(r), "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}

		t[parts[0]] = parts[1]
	}

	return t
}
