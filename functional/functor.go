package functional

// IdentityFunc is an identity function for functor law testing.
func IdentityFunc[T any](v T) T {
	return v
}

// ComposeFunc composes two functions for functor law testing.
func ComposeFunc[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
