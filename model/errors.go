package model

import (
	"errors"
	"fmt"

	"xdao.co/shapes/shape"
)

type ErrorCode string

const (
	ErrInvalidDimension ErrorCode = "INVALID_DIMENSION"
	ErrDegenerateShape  ErrorCode = "DEGENERATE_SHAPE"
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrInternal         ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	RuleID  string    `json:"ruleID,omitempty"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// FromError projects err onto a CodedError. Returns nil for a nil err.
func FromError(err error) *CodedError {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce
	}
	var se *shape.Error
	if !errors.As(err, &se) {
		return NewError(ErrInternal, err.Error())
	}
	code := ErrInternal
	switch se.Kind {
	case shape.KindInvalidDimension:
		code = ErrInvalidDimension
	case shape.KindDegenerateShape:
		code = ErrDegenerateShape
	case shape.KindParse, shape.KindCanonical:
		code = ErrInvalidRequest
	}
	return &CodedError{Code: code, RuleID: se.RuleID, Message: se.Message}
}
