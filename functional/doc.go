// Package functional provides Option and Either for Go.
//
// Option[T] holds zero or one value and replaces nil as a marker for
// absence. Either[L, R] holds exactly one of two values; by convention
// Left carries an error or alternative and Right the success value. Both
// are immutable values safe to share between goroutines.
//
// Operations that change the type parameter are free functions
// (MapOption, FlatMapOption, MapEither, ToEither) because Go methods
// cannot declare their own type parameters. The query-style names Select,
// SelectMany and Where alias them.
//
// Reading an absent value or the inactive side of an Either, and passing
// a nil function where one is required, panic with an *Error. The Try
// accessors return the same error instead.
package functional
