package functional

import (
	"fmt"
	"hash/maphash"
	"iter"
)

// Option represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers.
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsDefined is an alias of IsSome.
func (o Option[T]) IsDefined() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// IsEmpty is an alias of IsNone.
func (o Option[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the contained value or panics with ErrAbsentValue if empty.
func (o Option[T]) Get() T {
	if !o.present {
		panic(newError(KindAbsentValue, "Option.Get"))
	}
	return o.value
}

// TryGet returns the contained value, or an ErrAbsentValue error if empty.
func (o Option[T]) TryGet() (T, error) {
	if !o.present {
		var zero T
		return zero, newError(KindAbsentValue, "Option.TryGet")
	}
	return o.value, nil
}

// Value returns the contained value and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.present
}

// GetOrElse returns the contained value or a default.
func (o Option[T]) GetOrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// GetOrElseFunc returns the contained value or computes a default.
// fn is only called when the Option is empty.
func (o Option[T]) GetOrElseFunc(fn func() T) T {
	requireFunc(fn != nil, "Option.GetOrElseFunc")
	if o.present {
		return o.value
	}
	return fn()
}

// OrElse returns o if it is defined, otherwise alt.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alt
}

// OrElseFunc returns o if it is defined, otherwise the Option produced by fn.
func (o Option[T]) OrElseFunc(fn func() Option[T]) Option[T] {
	requireFunc(fn != nil, "Option.OrElseFunc")
	if o.present {
		return o
	}
	return fn()
}

// Match executes one of two functions based on Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	requireFunc(onSome != nil && onNone != nil, "Option.Match")
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// MatchIf is Match where a value failing predicate is handled as None.
func (o Option[T]) MatchIf(predicate func(T) bool, onSome func(T), onNone func()) {
	requireFunc(predicate != nil && onSome != nil && onNone != nil, "Option.MatchIf")
	if o.present && predicate(o.value) {
		onSome(o.value)
	} else {
		onNone()
	}
}

// MatchSome calls fn with the value if present.
func (o Option[T]) MatchSome(fn func(T)) {
	requireFunc(fn != nil, "Option.MatchSome")
	if o.present {
		fn(o.value)
	}
}

// MatchNone calls fn if the Option is empty.
func (o Option[T]) MatchNone(fn func()) {
	requireFunc(fn != nil, "Option.MatchNone")
	if !o.present {
		fn()
	}
}

// Filter returns None if predicate returns false.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	requireFunc(predicate != nil, "Option.Filter")
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Exists reports whether the value is present and satisfies predicate.
func (o Option[T]) Exists(predicate func(T) bool) bool {
	requireFunc(predicate != nil, "Option.Exists")
	return o.present && predicate(o.value)
}

// All returns a sequence of zero or one element.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// ToSlice converts Option to a slice (empty or single element).
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// ToPtr converts Option to a pointer to a copy of the value.
func (o Option[T]) ToPtr() *T {
	if o.present {
		v := o.value
		return &v
	}
	return nil
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MapOption applies a transformation function to Option.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	requireFunc(fn != nil, "MapOption")
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMapOption applies a function that returns an Option.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	requireFunc(fn != nil, "FlatMapOption")
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// MatchOption executes one of two functions and returns the result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	requireFunc(onSome != nil && onNone != nil, "MatchOption")
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MatchOptionIf is MatchOption where a value failing predicate takes the onNone branch.
func MatchOptionIf[T, U any](o Option[T], predicate func(T) bool, onSome func(T) U, onNone func() U) U {
	requireFunc(predicate != nil && onSome != nil && onNone != nil, "MatchOptionIf")
	if o.present && predicate(o.value) {
		return onSome(o.value)
	}
	return onNone()
}

// ToEither converts None to Left(err) and Some(v) to Right(v).
func ToEither[E, T any](o Option[T], err E) Either[E, T] {
	if o.present {
		return Right[E](o.value)
	}
	return Left[E, T](err)
}

// Contains reports whether o holds a value equal to value. Values whose
// dynamic type is not comparable never match.
func Contains[T comparable](o Option[T], value T) bool {
	return o.present && safeEqual(o.value, value)
}

// Equal reports whether a and b are both None, or both Some with equal
// values. A Some holding a value of a non-comparable dynamic type, such as
// a slice stored in an Option[any], is equal to nothing; use EqualFunc for
// those.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || safeEqual(a.value, b.value)
}

// EqualFunc is Equal using eq to compare present values.
func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	requireFunc(eq != nil, "EqualFunc")
	if a.present != b.present {
		return false
	}
	return !a.present || eq(a.value, b.value)
}

// NoneHash is the hash of every None.
const NoneHash uint64 = 0

// Hash returns a hash of o consistent with Equal. None hashes to NoneHash,
// which no Some hashes to.
func Hash[T comparable](seed maphash.Seed, o Option[T]) uint64 {
	if !o.present {
		return NoneHash
	}
	var h uint64
	if isComparable(o.value) {
		h = maphash.Comparable(seed, o.value)
	} else {
		h = maphash.String(seed, fmt.Sprintf("%T:%v", o.value, o.value))
	}
	if h == NoneHash {
		return 1
	}
	return h
}

// FromPtr creates an Option from a pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// As returns Some(v.(U)) when v holds a non-nil U, otherwise None.
func As[U any](v any) Option[U] {
	u, ok := v.(U)
	if !ok || isNil(u) {
		return None[U]()
	}
	return Some(u)
}
