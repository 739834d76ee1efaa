// Package fptest provides rapid generators for Option, Either and Pair.
package fptest

import (
	"github.com/authcorp/option/functional"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		return functional.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates None[T] values only.
func NoneGen[T any]() *rapid.Generator[functional.Option[T]] {
	return rapid.Just(functional.None[T]())
}

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return functional.Right[L](rightGen.Draw(t, "right"))
		}
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// LeftGen generates Left[L, R] values only.
func LeftGen[L, R any](leftGen *rapid.Generator[L]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// RightGen generates Right[L, R] values only.
func RightGen[L, R any](rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		return functional.Right[L](rightGen.Draw(t, "right"))
	})
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[functional.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) functional.Pair[A, B] {
		return functional.NewPair(firstGen.Draw(t, "first"), secondGen.Draw(t, "second"))
	})
}

// OptionFuncGen generates functions int -> Option[int] for monad law checks.
// The generated function is total and deterministic.
func OptionFuncGen() *rapid.Generator[func(int) functional.Option[int]] {
	return rapid.Custom(func(t *rapid.T) func(int) functional.Option[int] {
		addend := rapid.IntRange(-100, 100).Draw(t, "addend")
		modulus := rapid.IntRange(2, 7).Draw(t, "modulus")
		return func(x int) functional.Option[int] {
			if x%modulus == 0 {
				return functional.None[int]()
			}
			return functional.Some(x + addend)
		}
	})
}
