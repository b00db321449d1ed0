package dimension

import "github.com/arloliu/zdex/internal/hash"

// FacetValue is a categorical dimension: a string hashed to 64 bits.
//
// Equal names always produce equal bits, so an exact-match constraint on a
// facet narrows a z-order range scan. Hashing discards order; a range over
// facet values is meaningless.
type FacetValue struct {
	name string
	id   uint64
}

var _ Dimension = FacetValue{}

// Facet returns a 64-bit dimension for the categorical value name.
func Facet(name string) FacetValue {
	return FacetValue{name: name, id: hash.ID(name)}
}

// Name returns the original categorical value.
func (f FacetValue) Name() string { return f.name }

// ID returns the 64-bit hash used as the dimension's bits.
func (f FacetValue) ID() uint64 { return f.id }

func (FacetValue) Width() (uint, error) { return 64, nil }

func (f FacetValue) BitAt(i uint) (bool, error) {
	if i >= 64 {
		return false, outOfRange(i, 64)
	}

	return (f.id>>(63-i))&1 == 1, nil
}
