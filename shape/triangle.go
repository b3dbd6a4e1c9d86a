package shape

import (
	"math"
	"sort"
)

// MsgTriangleDoesNotExist is the message carried by SHAPE-DEG-001.
const MsgTriangleDoesNotExist = "a triangle with the specified sides does not exist"

// Triangle is an immutable triangle given by its three side lengths.
// Obtain one from NewTriangle.
type Triangle struct {
	a, b, c float64
}

// NewTriangle validates the sides and returns a Triangle.
//
// Non-positive sides fail with KindInvalidDimension before the triangle
// inequality is checked. The inequality is strict: a side equal to the sum
// of the other two is degenerate.
func NewTriangle(a, b, c float64) (Triangle, error) {
	t := Triangle{a: a, b: b, c: c}
	err := validateRules(
		positive("SHAPE-DIM-004", "side a", a),
		positive("SHAPE-DIM-004", "side b", b),
		positive("SHAPE-DIM-004", "side c", c),
		rule{id: "SHAPE-DEG-001", apply: func() error {
			if a >= b+c || b >= a+c || c >= a+b {
				return NewError(KindDegenerateShape, "SHAPE-DEG-001", MsgTriangleDoesNotExist)
			}
			return nil
		}},
		finiteResult(t),
	)
	if err != nil {
		return Triangle{}, err
	}
	return t, nil
}

// Sides returns the side lengths in construction order.
func (t Triangle) Sides() (a, b, c float64) { return t.a, t.b, t.c }

func (Triangle) Kind() Kind { return KindTriangle }

// Area uses Heron's formula.
func (t Triangle) Area() float64 {
	s := t.Perimeter() / 2
	p := s * (s - t.a) * (s - t.b) * (s - t.c)
	if p < 0 {
		// rounding on near-flat triangles
		return 0
	}
	return math.Sqrt(p)
}

func (t Triangle) Perimeter() float64 {
	return t.a + t.b + t.c
}

// IsRight reports whether the longest side is a hypotenuse for the other two,
// within RightAngleTolerance relative to its square.
func (t Triangle) IsRight() bool {
	sides := []float64{t.a, t.b, t.c}
	sort.Float64s(sides)
	x, y, z := sides[0], sides[1], sides[2]
	return math.Abs(x*x+y*y-z*z) <= RightAngleTolerance*z*z
}

func (Triangle) sealed() {}
