package shape

// Rectangle is an immutable axis-free rectangle. Obtain one from NewRectangle.
type Rectangle struct {
	width, height float64
}

// NewRectangle validates width and height and returns a Rectangle.
func NewRectangle(width, height float64) (Rectangle, error) {
	r := Rectangle{width: width, height: height}
	err := validateRules(
		positive("SHAPE-DIM-002", "width", width),
		positive("SHAPE-DIM-003", "height", height),
		finiteResult(r),
	)
	if err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

func (r Rectangle) Width() float64  { return r.width }
func (r Rectangle) Height() float64 { return r.height }

func (Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) Area() float64 {
	return r.width * r.height
}

func (r Rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

func (Rectangle) sealed() {}
