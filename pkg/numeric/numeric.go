// Package numeric defines the type-parameter constraints used by the generic
// math functions.
package numeric

// Signed matches every signed integer type, including named types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches every unsigned integer type, including named types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer matches any type supporting the integer operators, including %.
type Integer interface {
	Signed | Unsigned
}

// Float matches the floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number matches any type supporting + - * / and ordering.
type Number interface {
	Integer | Float
}
