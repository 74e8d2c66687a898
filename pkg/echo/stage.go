package echo

// Stage is the lifecycle position of an echo resource, stored in the stage tag
type Stage string

const (
	StageNew       Stage = "new"
	StageModified  Stage = "modified"
	StageRebooted  Stage = "rebooted"
	StagePromoted  Stage = "promoted"
	StageForgotten Stage = "forgotten"
	StageRetired   Stage = "retired"
)

// StatusAvailable is the provider status of a resource that can be operated on
const StatusAvailable = "available"

// Stages lists every stage in lifecycle order
var Stages = []Stage{
	StageNew,
	StageModified,
	StageRebooted,
	StagePromoted,
	StageForgotten,
	StageRetired,
}

// Valid returns true when s is a known stage
func (s Stage) Valid() bool {
	return s.index() >= 0
}

// Next returns the stage that follows s, false when s is terminal or unknown
func (s Stage) Next() (Stage, bool) {
	i := s.index()
	if i < 0 || i == len(Stages)-1 {
		return "", false
	}

	return Stages[i+1], true
}

// Before returns true when s comes earlier in the lifecycle than o
func (s Stage) Before(o Stage) bool {
	return s.Valid() && o.Valid() && s.index() < o.index()
}

func (s Stage) String() string {
	return string(s)
}

func (s Stage) index() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}

	return -1
}
