package shape

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomy_WrappedStillMatches(t *testing.T) {
	_, err := NewTriangle(3, 2, 1)
	wrapped := fmt.Errorf("batch item 2: %w", err)

	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatalf("expected structured *shape.Error, got %T", wrapped)
	}
	if e.Kind != KindDegenerateShape {
		t.Fatalf("expected KindDegenerateShape, got %s", e.Kind)
	}
	if RuleID(wrapped) != "SHAPE-DEG-001" {
		t.Fatalf("expected SHAPE-DEG-001, got %q", RuleID(wrapped))
	}
	if IsKind(wrapped, KindInvalidDimension) {
		t.Fatalf("did not expect InvalidDimension")
	}
}

func TestErrorTaxonomy_PlainErrors(t *testing.T) {
	plain := errors.New("boom")
	if IsKind(plain, KindInternal) {
		t.Fatalf("plain error must not match a kind")
	}
	if RuleID(plain) != "" {
		t.Fatalf("expected empty RuleID, got %q", RuleID(plain))
	}
}

func TestWrapError_Unwrap(t *testing.T) {
	cause := errors.New("strconv failure")
	err := WrapError(KindParse, "SHAPE-PARSE-020", "bad number", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable via errors.Is")
	}
	if WrapError(KindParse, "SHAPE-PARSE-020", "bad number", nil).(*Error).Cause != nil {
		t.Fatalf("expected nil cause")
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" || nilErr.Unwrap() != nil {
		t.Fatalf("nil receiver must be safe")
	}
}
