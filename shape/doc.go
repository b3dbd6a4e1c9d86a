// Package shape computes area and perimeter for a closed set of plane shapes.
//
// Every variant is validated once, by its constructor, and is immutable
// afterwards. Constructors return the zero value together with a *Error when
// the dimensions are invalid; there are no partially built shapes.
//
// Values are safe for concurrent reads.
package shape
