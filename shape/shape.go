package shape

// Kind names one of the closed set of shape variants.
type Kind string

const (
	KindCircle    Kind = "circle"
	KindTriangle  Kind = "triangle"
	KindRectangle Kind = "rectangle"
)

// Kinds lists every variant in a stable order.
func Kinds() []Kind {
	return []Kind{KindCircle, KindTriangle, KindRectangle}
}

// Shape is the capability shared by every variant.
//
// Area and Perimeter are pure and return non-negative finite values for any
// Shape obtained from a constructor in this package. The unexported method
// keeps the variant set closed.
type Shape interface {
	Kind() Kind
	Area() float64
	Perimeter() float64
	sealed()
}

var (
	_ Shape = Circle{}
	_ Shape = Triangle{}
	_ Shape = Rectangle{}
)
