package actions

import (
	"fmt"

	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/clients/prompt"
)

// confirm asks the operator to type expected back, a declined prompt is
// logged and returns false
func confirm(p prompt.Prompt, l logger.Logger, expected, format string, a ...interface{}) (bool, error) {
	ok, err := p.Confirm(fmt.Sprintf(format, a...), expected)
	if err != nil {
		return false, fmt.Errorf("unable to confirm operation: %w", err)
	}

	if !ok {
		l.Info("User declined to proceed.")
	}

	return ok, nil
}
