package functional

import "reflect"

// safeEqual is a == b, reporting false instead of panicking when either
// operand holds a dynamic type that cannot be compared.
func safeEqual[T comparable](a, b T) bool {
	if !isComparable(a) || !isComparable(b) {
		return false
	}
	return a == b
}

// isComparable reports whether == on v cannot panic. Only interface-typed
// values, or structs and arrays containing them, can fail the check.
func isComparable[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	return rv.Comparable()
}
