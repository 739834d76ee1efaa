package functional

import (
	"fmt"
	"iter"
)

// Either represents a value of one of two possible types.
// By convention, Left is used for errors and Right for success values.
// The zero value is a Left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either with a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right creates an Either with a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value or panics with ErrInvalidState.
func (e Either[L, R]) Left() L {
	if e.isRight {
		panic(newError(KindInvalidState, "Either.Left"))
	}
	return e.left
}

// Right returns the right value or panics with ErrInvalidState.
func (e Either[L, R]) Right() R {
	if !e.isRight {
		panic(newError(KindInvalidState, "Either.Right"))
	}
	return e.right
}

// TryLeft returns the left value, or an ErrInvalidState error on a Right.
func (e Either[L, R]) TryLeft() (L, error) {
	if e.isRight {
		var zero L
		return zero, newError(KindInvalidState, "Either.TryLeft")
	}
	return e.left, nil
}

// TryRight returns the right value, or an ErrInvalidState error on a Left.
func (e Either[L, R]) TryRight() (R, error) {
	if !e.isRight {
		var zero R
		return zero, newError(KindInvalidState, "Either.TryRight")
	}
	return e.right, nil
}

// Use executes one of two functions based on Either state.
func (e Either[L, R]) Use(onLeft func(L), onRight func(R)) {
	requireFunc(onLeft != nil && onRight != nil, "Either.Use")
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// GetOrElse returns the right value or a default.
func (e Either[L, R]) GetOrElse(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// ToOption discards a left value.
func (e Either[L, R]) ToOption() Option[R] {
	if e.isRight {
		return Some(e.right)
	}
	return None[R]()
}

// All returns a sequence holding the right value, or nothing for a Left.
func (e Either[L, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		if e.isRight {
			yield(e.right)
		}
	}
}

// Swap exchanges left and right values.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// UseEither executes one of two functions and returns the result.
func UseEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	requireFunc(onLeft != nil && onRight != nil, "UseEither")
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the right value. A left value is
// carried over untouched.
func MapEither[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	requireFunc(fn != nil, "MapEither")
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapEitherLeft applies a function to the left value.
func MapEitherLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	requireFunc(fn != nil, "MapEitherLeft")
	if !e.isRight {
		return Left[U, R](fn(e.left))
	}
	return Right[U](e.right)
}

// FlatMapEither applies a function that returns an Either.
func FlatMapEither[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	requireFunc(fn != nil, "FlatMapEither")
	if e.isRight {
		return fn(e.right)
	}
	return Left[L, U](e.left)
}

// EqualEither reports whether a and b hold the same side with equal values.
// Values of a non-comparable dynamic type are equal to nothing.
func EqualEither[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return safeEqual(a.right, b.right)
	}
	return safeEqual(a.left, b.left)
}

// FromResult converts a (value, error) pair into an Either.
func FromResult[T any](value T, err error) Either[error, T] {
	if err != nil {
		return Left[error, T](err)
	}
	return Right[error](value)
}
