package types

// Violation types reported by document checks.
const (
	ViolationPageOverflow = "page_overflow"
	ViolationEmptyText    = "empty_text"
	ViolationUnreadable   = "unreadable"
)

// Violation severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single problem found in a rendered document
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
}

// Violations represents the result of checking one rendered document
type Violations struct {
	Violations []Violation `json:"violations"`
	Pages      int         `json:"pages"`
}

// HasErrors reports whether any violation has error severity.
func (v *Violations) HasErrors() bool {
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}
