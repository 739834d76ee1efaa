package functional

import (
	"iter"
	"reflect"
)

// Query-style aliases. Each one validates its function argument before
// delegating, so a nil selector fails even when the source is empty.

// Select is MapOption.
func Select[T, U any](o Option[T], selector func(T) U) Option[U] {
	requireFunc(selector != nil, "Select")
	return MapOption(o, selector)
}

// SelectMany is FlatMapOption.
func SelectMany[T, U any](o Option[T], selector func(T) Option[U]) Option[U] {
	requireFunc(selector != nil, "SelectMany")
	return FlatMapOption(o, selector)
}

// Where is Option.Filter.
func Where[T any](o Option[T], predicate func(T) bool) Option[T] {
	requireFunc(predicate != nil, "Where")
	return o.Filter(predicate)
}

// SelectEither is MapEither.
func SelectEither[L, R, U any](e Either[L, R], selector func(R) U) Either[L, U] {
	requireFunc(selector != nil, "SelectEither")
	return MapEither(e, selector)
}

// HasValue is Option.IsSome.
func HasValue[T any](o Option[T]) bool {
	return o.IsSome()
}

// Any is Option.Exists.
func Any[T any](o Option[T], predicate func(T) bool) bool {
	requireFunc(predicate != nil, "Any")
	return o.Exists(predicate)
}

// SelectManySome yields selector(v) for every Some(v) in seq. None
// elements are skipped.
func SelectManySome[T, U any](seq iter.Seq[Option[T]], selector func(T) U) iter.Seq[U] {
	requireFunc(seq != nil && selector != nil, "SelectManySome")
	return func(yield func(U) bool) {
		for o := range seq {
			if !o.present {
				continue
			}
			if !yield(selector(o.value)) {
				return
			}
		}
	}
}

// SelectEach yields selector(o) for every Option in seq, None included.
func SelectEach[T, U any](seq iter.Seq[Option[T]], selector func(Option[T]) U) iter.Seq[U] {
	requireFunc(seq != nil && selector != nil, "SelectEach")
	return func(yield func(U) bool) {
		for o := range seq {
			if !yield(selector(o)) {
				return
			}
		}
	}
}

// SelectManyRight yields selector(r) for every Right(r) in seq. Left
// elements are skipped.
func SelectManyRight[L, R, U any](seq iter.Seq[Either[L, R]], selector func(R) U) iter.Seq[U] {
	requireFunc(seq != nil && selector != nil, "SelectManyRight")
	return func(yield func(U) bool) {
		for e := range seq {
			if !e.isRight {
				continue
			}
			if !yield(selector(e.right)) {
				return
			}
		}
	}
}

// Zip yields a single Pair when both options are Some, and nothing otherwise.
func Zip[A, B any](a Option[A], b Option[B]) iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		if a.present && b.present {
			yield(NewPair(a.value, b.value))
		}
	}
}

// Zip3 yields a single Triple when all three options are Some.
func Zip3[A, B, C any](a Option[A], b Option[B], c Option[C]) iter.Seq[Triple[A, B, C]] {
	return func(yield func(Triple[A, B, C]) bool) {
		if a.present && b.present && c.present {
			yield(NewTriple(a.value, b.value, c.value))
		}
	}
}

// Zip3With yields fn applied to the three values when all options are Some.
// fn runs lazily, once per traversal.
func Zip3With[A, B, C, D any](a Option[A], b Option[B], c Option[C], fn func(A, B, C) D) iter.Seq[D] {
	requireFunc(fn != nil, "Zip3With")
	return func(yield func(D) bool) {
		if a.present && b.present && c.present {
			yield(fn(a.value, b.value, c.value))
		}
	}
}

// FirstOption returns the first element of seq satisfying predicate. A
// nil first match (pointer, map, slice, func, chan or interface) is
// reported as None.
func FirstOption[T any](seq iter.Seq[T], predicate func(T) bool) Option[T] {
	requireFunc(seq != nil && predicate != nil, "FirstOption")
	for v := range seq {
		if !predicate(v) {
			continue
		}
		if isNil(v) {
			return None[T]()
		}
		return Some(v)
	}
	return None[T]()
}

// First returns the first element of seq, following the nil rule of FirstOption.
func First[T any](seq iter.Seq[T]) Option[T] {
	return FirstOption(seq, func(T) bool { return true })
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
