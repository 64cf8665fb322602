package varuint

import "math"

// MaxSize is the largest number of bytes a single encoded value occupies.
const MaxSize = 9

// Reserved is the header byte held back for a future extension to integers
// wider than 64 bits. Decoding it is an error.
const Reserved byte = 255

// Class is a length class: one of nine disjoint ranges partitioning the
// unsigned 64-bit domain, each with a fixed total encoded size.
type Class struct {
	Header byte   // First header byte selecting the class.
	Size   int    // Total encoded bytes, header included.
	Min    uint64 // Smallest value encoded by the class.
	Max    uint64 // Largest value encoded by the class.
}

// Contains returns true if v encodes within this class.
func (c Class) Contains(v uint64) bool {
	return c.Min <= v && v <= c.Max
}

type classes []Class

// Of returns the class whose range contains v. The classes are contiguous
// and exhaustive, so every value belongs to exactly one.
func (cs classes) Of(v uint64) Class {
	for _, c := range cs {
		if c.Contains(v) {
			return c
		}
	}

	// Unreachable: Class9.Max is the largest uint64.
	return Class9
}

// Match returns the class selected by the header byte h. It returns false
// for the reserved header byte.
func (cs classes) Match(h byte) (c Class, ok bool) {
	if h == Reserved {
		return c, false
	}

	for i := len(cs) - 1; i >= 0; i-- {
		if h >= cs[i].Header {
			return cs[i], true
		}
	}

	return c, false
}

var (
	Class1 = Class{0, 1, 0, 240}
	Class2 = Class{241, 2, 241, 2031}
	Class3 = Class{248, 3, 2032, 67567}
	Class4 = Class{249, 4, 67568, 1<<24 - 1}
	Class5 = Class{250, 5, 1 << 24, 1<<32 - 1}
	Class6 = Class{251, 6, 1 << 32, 1<<40 - 1}
	Class7 = Class{252, 7, 1 << 40, 1<<48 - 1}
	Class8 = Class{253, 8, 1 << 48, 1<<56 - 1}
	Class9 = Class{254, 9, 1 << 56, math.MaxUint64}

	Classes = classes{
		Class1,
		Class2,
		Class3,
		Class4,
		Class5,
		Class6,
		Class7,
		Class8,
		Class9,
	}
)
