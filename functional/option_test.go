package functional

import (
	"errors"
	"hash/maphash"
	"slices"
	"testing"
)

// expectPanic runs fn and checks it panicked with an *Error of kind.
func expectPanic(t *testing.T, kind Kind, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic of kind %s", kind)
		}
		err, ok := r.(*Error)
		if !ok {
			t.Fatalf("expected *Error panic, got %T: %v", r, r)
		}
		if err.Kind != kind {
			t.Fatalf("expected kind %s, got %s", kind, err.Kind)
		}
	}()
	fn()
}

func TestOptionBasicOperations(t *testing.T) {
	t.Run("Some creates present option", func(t *testing.T) {
		o := Some(42)
		if !o.IsSome() || !o.IsDefined() {
			t.Error("expected IsSome to be true")
		}
		if o.IsNone() || o.IsEmpty() {
			t.Error("expected IsNone to be false")
		}
		if o.Get() != 42 {
			t.Errorf("expected 42, got %d", o.Get())
		}
	})

	t.Run("None creates empty option", func(t *testing.T) {
		o := None[int]()
		if o.IsSome() {
			t.Error("expected IsSome to be false")
		}
		if !o.IsNone() {
			t.Error("expected IsNone to be true")
		}
	})

	t.Run("zero value is None", func(t *testing.T) {
		var o Option[string]
		if !o.IsNone() {
			t.Error("expected zero Option to be None")
		}
	})

	t.Run("Get panics on None", func(t *testing.T) {
		expectPanic(t, KindAbsentValue, func() { None[int]().Get() })
	})

	t.Run("TryGet returns absent value error", func(t *testing.T) {
		_, err := None[int]().TryGet()
		if !errors.Is(err, ErrAbsentValue) {
			t.Errorf("expected ErrAbsentValue, got %v", err)
		}
		v, err := Some(7).TryGet()
		if err != nil || v != 7 {
			t.Errorf("expected 7, nil; got %d, %v", v, err)
		}
	})

	t.Run("Value is comma-ok", func(t *testing.T) {
		if v, ok := Some("a").Value(); !ok || v != "a" {
			t.Error("expected a, true")
		}
		if _, ok := None[string]().Value(); ok {
			t.Error("expected false")
		}
	})
}

func TestOptionGetOrElse(t *testing.T) {
	t.Run("GetOrElse returns default on None", func(t *testing.T) {
		if None[int]().GetOrElse(100) != 100 {
			t.Error("expected default value")
		}
	})

	t.Run("GetOrElse returns value on Some", func(t *testing.T) {
		if Some(42).GetOrElse(100) != 42 {
			t.Error("expected actual value")
		}
	})

	t.Run("GetOrElseFunc is lazy", func(t *testing.T) {
		calls := 0
		producer := func() int {
			calls++
			return 100
		}

		if Some(42).GetOrElseFunc(producer) != 42 {
			t.Error("expected actual value")
		}
		if calls != 0 {
			t.Errorf("producer called %d times on Some", calls)
		}

		if None[int]().GetOrElseFunc(producer) != 100 {
			t.Error("expected produced value")
		}
		if calls != 1 {
			t.Errorf("producer called %d times on None, want 1", calls)
		}
	})

	t.Run("GetOrElseFunc rejects nil producer", func(t *testing.T) {
		expectPanic(t, KindInvalidArgument, func() { Some(1).GetOrElseFunc(nil) })
	})
}

func TestOptionOrElse(t *testing.T) {
	t.Run("OrElse keeps Some", func(t *testing.T) {
		if got := Some(1).OrElse(Some(2)); got.Get() != 1 {
			t.Errorf("expected Some(1), got %v", got)
		}
	})

	t.Run("OrElse falls back on None", func(t *testing.T) {
		if got := None[int]().OrElse(Some(2)); got.Get() != 2 {
			t.Errorf("expected Some(2), got %v", got)
		}
	})

	t.Run("OrElseFunc is lazy", func(t *testing.T) {
		calls := 0
		alt := func() Option[int] {
			calls++
			return Some(2)
		}
		Some(1).OrElseFunc(alt)
		if calls != 0 {
			t.Errorf("alternative called %d times on Some", calls)
		}
		if got := None[int]().OrElseFunc(alt); got.Get() != 2 || calls != 1 {
			t.Errorf("expected Some(2) after one call, got %v after %d", got, calls)
		}
	})

	t.Run("OrElseFunc rejects nil producer", func(t *testing.T) {
		expectPanic(t, KindInvalidArgument, func() { None[int]().OrElseFunc(nil) })
	})
}

func TestOptionMatch(t *testing.T) {
	t.Run("Match dispatches on state", func(t *testing.T) {
		var got []string
		Some(1).Match(func(int) { got = append(got, "some") }, func() { got = append(got, "none") })
		None[int]().Match(func(int) { got = append(got, "some") }, func() { got = append(got, "none") })
		if !slices.Equal(got, []string{"some", "none"}) {
			t.Errorf("unexpected dispatch %v", got)
		}
	})

	t.Run("Match rejects nil branches", func(t *testing.T) {
		expectPanic(t, KindInvalidArgument, func() { Some(1).Match(nil, func() {}) })
		expectPanic(t, KindInvalidArgument, func() { Some(1).Match(func(int) {}, nil) })
	})

	t.Run("MatchOption returns branch result", func(t *testing.T) {
		onSome := func(v int) string { return "some" }
		onNone := func() string { return "none" }
		if MatchOption(Some(1), onSome, onNone) != "some" {
			t.Error("expected some")
		}
		if MatchOption(None[int](), onSome, onNone) != "none" {
			t.Error("expected none")
		}
	})

	t.Run("MatchIf treats failed predicate as None", func(t *testing.T) {
		positive := func(v int) bool { return v > 0 }
		var got string
		Some(-1).MatchIf(positive, func(int) { got = "some" }, func() { got = "none" })
		if got != "none" {
			t.Errorf("expected none, got %s", got)
		}
		Some(1).MatchIf(positive, func(int) { got = "some" }, func() { got = "none" })
		if got != "some" {
			t.Errorf("expected some, got %s", got)
		}
	})

	t.Run("MatchOptionIf treats failed predicate as None", func(t *testing.T) {
		even := func(v int) bool { return v%2 == 0 }
		double := func(v int) int { return v * 2 }
		zero := func() int { return 0 }
		if MatchOptionIf(Some(3), even, double, zero) != 0 {
			t.Error("expected none branch for odd value")
		}
		if MatchOptionIf(Some(4), even, double, zero) != 8 {
			t.Error("expected some branch for even value")
		}
		if MatchOptionIf(None[int](), even, double, zero) != 0 {
			t.Error("expected none branch for None")
		}
	})

	t.Run("MatchSome and MatchNone are one-sided", func(t *testing.T) {
		someCalls, noneCalls := 0, 0
		onSome := func(int) { someCalls++ }
		onNone := func() { noneCalls++ }

		Some(1).MatchSome(onSome)
		None[int]().MatchSome(onSome)
		Some(1).MatchNone(onNone)
		None[int]().MatchNone(onNone)

		if someCalls != 1 || noneCalls != 1 {
			t.Errorf("expected one call each, got some=%d none=%d", someCalls, noneCalls)
		}
	})
}

func TestOptionFilter(t *testing.T) {
	t.Run("Filter keeps matching values", func(t *testing.T) {
		filtered := Some(42).Filter(func(x int) bool { return x > 0 })
		if !filtered.IsSome() || filtered.Get() != 42 {
			t.Error("expected Some(42)")
		}
	})

	t.Run("Filter removes non-matching values", func(t *testing.T) {
		filtered := Some(42).Filter(func(x int) bool { return x < 0 })
		if !filtered.IsNone() {
			t.Error("expected None")
		}
	})

	t.Run("Filter on None never calls predicate", func(t *testing.T) {
		called := false
		filtered := None[int]().Filter(func(int) bool {
			called = true
			return true
		})
		if !filtered.IsNone() || called {
			t.Error("expected None without predicate call")
		}
	})

	t.Run("Filter rejects nil predicate on None", func(t *testing.T) {
		expectPanic(t, KindInvalidArgument, func() { None[int]().Filter(nil) })
	})
}

func TestMapAndFlatMap(t *testing.T) {
	t.Run("MapOption on Some applies function", func(t *testing.T) {
		result := MapOption(Some(21), func(x int) string { return string(rune('A' + x)) })
		if result.Get() != "V" {
			t.Errorf("expected Some(V), got %v", result)
		}
	})

	t.Run("MapOption on None skips function", func(t *testing.T) {
		result := MapOption(None[int](), func(int) int {
			t.Fatal("function invoked on None")
			return 0
		})
		if !result.IsNone() {
			t.Error("expected None")
		}
	})

	t.Run("MapOption rejects nil function", func(t *testing.T) {
		expectPanic(t, KindInvalidArgument, func() { MapOption[int, int](None[int](), nil) })
	})

	t.Run("FlatMapOption on Some applies function", func(t *testing.T) {
		result := FlatMapOption(Some(42), func(x int) Option[int] { return Some(x * 2) })
		if !result.IsSome() || result.Get() != 84 {
			t.Error("expected Some(84)")
		}
	})

	t.Run("FlatMapOption may return None", func(t *testing.T) {
		result := FlatMapOption(Some(42), func(int) Option[int] { return None[int]() })
		if !result.IsNone() {
			t.Error("expected None")
		}
	})

	t.Run("FlatMapOption on None returns None", func(t *testing.T) {
		result := FlatMapOption(None[int](), func(x int) Option[int] { return Some(x * 2) })
		if !result.IsNone() {
			t.Error("expected None")
		}
	})
}

func TestContainsAndExists(t *testing.T) {
	tests := []struct {
		name string
		opt  Option[int]
		v    int
		want bool
	}{
		{"Some equal", Some(5), 5, true},
		{"Some different", Some(5), 6, false},
		{"None", None[int](), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.opt, tt.v); got != tt.want {
				t.Errorf("Contains = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("Contains nil pointer", func(t *testing.T) {
		if !Contains(Some[*int](nil), nil) {
			t.Error("expected Some(nil) to contain nil")
		}
		x := 1
		if Contains(Some[*int](nil), &x) {
			t.Error("expected Some(nil) not to contain a non-nil pointer")
		}
	})

	t.Run("Exists", func(t *testing.T) {
		positive := func(v int) bool { return v > 0 }
		if !Some(1).Exists(positive) {
			t.Error("expected true for Some(1)")
		}
		if Some(-1).Exists(positive) || None[int]().Exists(positive) {
			t.Error("expected false")
		}
	})
}

func TestOptionEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Option[int]
		want bool
	}{
		{"Some equal", Some(5), Some(5), true},
		{"Some different", Some(5), Some(6), false},
		{"Some and None", Some(5), None[int](), false},
		{"None and Some", None[int](), Some(0), false},
		{"None and None", None[int](), None[int](), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			eq := func(x, y int) bool { return x == y }
			if got := EqualFunc(tt.a, tt.b, eq); got != tt.want {
				t.Errorf("EqualFunc = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptionHash(t *testing.T) {
	seed := maphash.MakeSeed()

	if Hash(seed, None[int]()) != NoneHash {
		t.Error("expected None to hash to NoneHash")
	}
	if Hash(seed, None[string]()) != Hash(seed, None[string]()) {
		t.Error("expected stable None hash")
	}
	if Hash(seed, Some(5)) != Hash(seed, Some(5)) {
		t.Error("expected equal values to hash equal")
	}
	for _, v := range []int{0, 1, -1, 42} {
		if Hash(seed, Some(v)) == NoneHash {
			t.Errorf("Some(%d) hashed to NoneHash", v)
		}
	}
	if Hash(seed, Some[*int](nil)) == NoneHash {
		t.Error("Some(nil) hashed to NoneHash")
	}
}

func TestOptionString(t *testing.T) {
	if Some(42).String() != "Some(42)" {
		t.Error("unexpected string for Some")
	}
	if None[int]().String() != "None" {
		t.Error("unexpected string for None")
	}
	if Some[error](nil).String() != "Some(<nil>)" {
		t.Errorf("unexpected string for Some(nil): %s", Some[error](nil).String())
	}
}

func TestOptionSequence(t *testing.T) {
	t.Run("Some yields one element", func(t *testing.T) {
		o := Some(3)
		for range 2 {
			if got := slices.Collect(o.All()); !slices.Equal(got, []int{3}) {
				t.Errorf("expected [3], got %v", got)
			}
		}
	})

	t.Run("None yields nothing", func(t *testing.T) {
		if got := slices.Collect(None[int]().All()); len(got) != 0 {
			t.Errorf("expected no elements, got %v", got)
		}
	})

	t.Run("ToSlice", func(t *testing.T) {
		if !slices.Equal(Some(1).ToSlice(), []int{1}) || len(None[int]().ToSlice()) != 0 {
			t.Error("unexpected slices")
		}
	})
}

func TestOptionPointers(t *testing.T) {
	n := 5
	o := FromPtr(&n)
	if o.Get() != 5 {
		t.Error("expected Some(5)")
	}
	p := o.ToPtr()
	*p = 6
	if o.Get() != 5 {
		t.Error("ToPtr must not alias the contained value")
	}
	if !FromPtr[int](nil).IsNone() || None[int]().ToPtr() != nil {
		t.Error("expected nil to map to None and back")
	}
}

func TestAs(t *testing.T) {
	var err error = errors.New("boom")
	if got := As[error](err); !got.IsSome() || got.Get() != err {
		t.Error("expected Some(err)")
	}
	if !As[string](42).IsNone() {
		t.Error("expected None for mismatched type")
	}
	if !As[error](nil).IsNone() {
		t.Error("expected None for nil")
	}
	var p *int
	if !As[*int](p).IsNone() {
		t.Error("expected None for typed nil pointer")
	}
}

func TestToEither(t *testing.T) {
	if e := ToEither(Some(1), "missing"); !e.IsRight() || e.Right() != 1 {
		t.Errorf("expected Right(1), got %v", e)
	}
	if e := ToEither(None[int](), "missing"); !e.IsLeft() || e.Left() != "missing" {
		t.Errorf("expected Left(missing), got %v", e)
	}
}

func TestUncomparableDynamicValues(t *testing.T) {
	seed := maphash.MakeSeed()
	slice := Some[any]([]int{1})
	mapped := Some[any](map[string]int{"a": 1})

	t.Run("Equal reports false", func(t *testing.T) {
		if Equal(slice, Some[any]([]int{1})) {
			t.Error("expected uncomparable values to be unequal")
		}
		if Equal(slice, Some[any](1)) || Equal(Some[any](1), mapped) {
			t.Error("expected mixed comparability to be unequal")
		}
		if !Equal(Some[any](1), Some[any](1)) {
			t.Error("expected comparable dynamic values to still compare")
		}
	})

	t.Run("Contains reports false", func(t *testing.T) {
		if Contains(slice, any([]int{1})) || Contains(Some[any](1), any([]int{1})) {
			t.Error("expected no match")
		}
	})

	t.Run("Hash falls back to rendering", func(t *testing.T) {
		if Hash(seed, slice) == NoneHash || Hash(seed, mapped) == NoneHash {
			t.Error("uncomparable Some hashed to NoneHash")
		}
		if Hash(seed, slice) != Hash(seed, Some[any]([]int{1})) {
			t.Error("expected stable hash for equal renderings")
		}
	})

	t.Run("struct with uncomparable field", func(t *testing.T) {
		type box struct{ V any }
		if Equal(Some(box{V: []int{1}}), Some(box{V: []int{1}})) {
			t.Error("expected uncomparable field to make values unequal")
		}
	})
}
