package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xdao.co/shapes/shape"
)

func TestFromError(t *testing.T) {
	_, dim := shape.NewCircle(-1)
	_, deg := shape.NewTriangle(15, 2, 9)

	cases := []struct {
		name string
		err  error
		want *CodedError
	}{
		{"nil", nil, nil},
		{"dimension", dim, &CodedError{Code: ErrInvalidDimension, RuleID: "SHAPE-DIM-001", Message: "radius must be a positive finite number"}},
		{"degenerate wrapped", fmt.Errorf("item 1: %w", deg), &CodedError{Code: ErrDegenerateShape, RuleID: "SHAPE-DEG-001", Message: shape.MsgTriangleDoesNotExist}},
		{"parse", shape.NewError(shape.KindCanonical, "SHAPE-CANON-001", "CR"), &CodedError{Code: ErrInvalidRequest, RuleID: "SHAPE-CANON-001", Message: "CR"}},
		{"plain", errors.New("boom"), &CodedError{Code: ErrInternal, Message: "boom"}},
		{"coded", NewError(ErrInvalidRequest, "bad"), &CodedError{Code: ErrInvalidRequest, Message: "bad"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, FromError(tc.err)); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodedError_JSON(t *testing.T) {
	b, err := json.Marshal(NewError(ErrDegenerateShape, shape.MsgTriangleDoesNotExist))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"code":"DEGENERATE_SHAPE","message":"a triangle with the specified sides does not exist"}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
	var nilErr *CodedError
	if nilErr.Error() != "" {
		t.Fatalf("nil receiver must render empty")
	}
}

func TestMeasurement_OmitsRightForNonTriangles(t *testing.T) {
	b, err := json.Marshal(Measurement{Kind: "circle", CID: "bafk", Area: 1, Perimeter: 2})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"index":0,"kind":"circle","cid":"bafk","area":1,"perimeter":2}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}
