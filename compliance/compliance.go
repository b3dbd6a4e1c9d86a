package compliance

import "fmt"

// ComplianceMode selects how a batch treats invalid shapes.
//
// Strict mode fails on the first invalid input.
// Permissive mode measures what it can and reports the rest as exclusions.
type ComplianceMode int

const (
	Permissive ComplianceMode = iota
	Strict
)

func (m ComplianceMode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("ComplianceMode(%d)", int(m))
	}
}

// ParseMode maps "strict"/"permissive" to a ComplianceMode. The empty string is Permissive.
func ParseMode(s string) (ComplianceMode, error) {
	switch s {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return Permissive, fmt.Errorf("unknown compliance mode %q", s)
	}
}
