package dsa

import "golang.org/x/exp/constraints"

// Ordered matches any type with a natural < ordering: integers, floats,
// and strings.
type Ordered = constraints.Ordered

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is a constraint for all numeric types, the element types
// accepted by the arithmetic helpers in the algo subpackage.
type Number interface {
	Floats | Integers
}
