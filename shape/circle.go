package shape

import "math"

// Circle is an immutable circle. Obtain one from NewCircle.
type Circle struct {
	radius float64
}

// NewCircle validates radius and returns a Circle.
func NewCircle(radius float64) (Circle, error) {
	c := Circle{radius: radius}
	if err := validateRules(positive("SHAPE-DIM-001", "radius", radius), finiteResult(c)); err != nil {
		return Circle{}, err
	}
	return c, nil
}

func (c Circle) Radius() float64 { return c.radius }

func (Circle) Kind() Kind { return KindCircle }

func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

func (Circle) sealed() {}
