package shape

import "errors"

// ErrorKind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
// Use errors.As to extract *Error for structured handling.
type ErrorKind string

const (
	KindInvalidDimension ErrorKind = "InvalidDimension"
	KindDegenerateShape  ErrorKind = "DegenerateShape"
	KindParse            ErrorKind = "Parse"
	KindCanonical        ErrorKind = "Canonical"
	KindInternal         ErrorKind = "Internal"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g., SHAPE-DIM-001, SHAPE-DEG-001) that
// names the violated rule. Message is intended for humans; do not match on it.
type Error struct {
	Kind    ErrorKind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewError returns a structured error. It is exported for sibling packages
// (descriptor) that report parse and canonical failures in the same taxonomy.
func NewError(kind ErrorKind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// WrapError is NewError with a cause.
func WrapError(kind ErrorKind, ruleID, msg string, cause error) error {
	if cause == nil {
		return NewError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
