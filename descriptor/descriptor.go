// Package descriptor is the canonical text form of a shape.
//
// A descriptor carries a shape kind and its dimensions:
//
//	-----BEGIN SHAPE-----
//	Kind: triangle
//	Side-A: 3
//	Side-B: 4
//	Side-C: 5
//	-----END SHAPE-----
//
// Rendering is deterministic and parsing rejects anything Render would not
// produce, so equal shapes always have equal bytes. Parse checks structure
// only; Build applies the geometric validation of package shape.
package descriptor

import (
	"xdao.co/shapes/shape"
)

const (
	Preamble  = "-----BEGIN SHAPE-----"
	Postamble = "-----END SHAPE-----"
)

const (
	KeyKind   = "Kind"
	KeyRadius = "Radius"
	KeyWidth  = "Width"
	KeyHeight = "Height"
	KeySideA  = "Side-A"
	KeySideB  = "Side-B"
	KeySideC  = "Side-C"
)

// dimensionKeys lists the required keys per kind in canonical (sorted) order.
var dimensionKeys = map[shape.Kind][]string{
	shape.KindCircle:    {KeyRadius},
	shape.KindRectangle: {KeyHeight, KeyWidth},
	shape.KindTriangle:  {KeySideA, KeySideB, KeySideC},
}

// Spec is the construction input for a shape.
type Spec struct {
	Kind shape.Kind
	Dims map[string]float64
}

// Keys returns the canonical dimension keys for kind, or nil for an unknown kind.
func Keys(kind shape.Kind) []string {
	keys, ok := dimensionKeys[kind]
	if !ok {
		return nil
	}
	return append([]string(nil), keys...)
}

func (s Spec) checkKeys() error {
	keys, ok := dimensionKeys[s.Kind]
	if !ok {
		return shape.NewError(shape.KindParse, "SHAPE-STR-022", "unknown shape kind: "+string(s.Kind))
	}
	for _, k := range keys {
		if _, ok := s.Dims[k]; !ok {
			return shape.NewError(shape.KindParse, "SHAPE-STR-032", "missing dimension: "+k)
		}
	}
	if len(s.Dims) != len(keys) {
		for k := range s.Dims {
			if !contains(keys, k) {
				return shape.NewError(shape.KindParse, "SHAPE-STR-031", "unknown dimension: "+k)
			}
		}
	}
	return nil
}

// Build constructs the shape described by s.
func Build(s Spec) (shape.Shape, error) {
	if err := s.checkKeys(); err != nil {
		return nil, err
	}
	d := s.Dims
	switch s.Kind {
	case shape.KindCircle:
		c, err := shape.NewCircle(d[KeyRadius])
		if err != nil {
			return nil, err
		}
		return c, nil
	case shape.KindRectangle:
		r, err := shape.NewRectangle(d[KeyWidth], d[KeyHeight])
		if err != nil {
			return nil, err
		}
		return r, nil
	case shape.KindTriangle:
		t, err := shape.NewTriangle(d[KeySideA], d[KeySideB], d[KeySideC])
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, shape.NewError(shape.KindInternal, "SHAPE-INTERNAL-002", "unhandled shape kind: "+string(s.Kind))
	}
}

// Describe returns the Spec that rebuilds s.
// A nil s yields the zero Spec, which Render and Build reject.
func Describe(s shape.Shape) Spec {
	if s == nil {
		return Spec{}
	}
	switch v := s.(type) {
	case shape.Circle:
		return Spec{Kind: shape.KindCircle, Dims: map[string]float64{KeyRadius: v.Radius()}}
	case shape.Rectangle:
		return Spec{Kind: shape.KindRectangle, Dims: map[string]float64{KeyWidth: v.Width(), KeyHeight: v.Height()}}
	case shape.Triangle:
		a, b, c := v.Sides()
		return Spec{Kind: shape.KindTriangle, Dims: map[string]float64{KeySideA: a, KeySideB: b, KeySideC: c}}
	default:
		return Spec{Kind: s.Kind()}
	}
}

func contains(keys []string, k string) bool {
	for _, x := range keys {
		if x == k {
			return true
		}
	}
	return false
}
