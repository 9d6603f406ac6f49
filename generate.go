package nonempty

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// OnceWith creates an iterator that yields the single value computed by fn.
// The function is called when the value is first needed.
func OnceWith[T any](fn func() T) Iterator[T] {
	return &lazy[T]{split: func() (T, iter.Seq[T]) {
		return fn(), iterkit.Empty[T]()
	}}
}

// Repeat creates an infinite iterator that yields the same value over and over.
func Repeat[T any](v T) Iterator[T] {
	return RepeatWith(func() T { return v })
}

// RepeatWith creates an infinite iterator that yields the values returned by fn.
func RepeatWith[T any](fn func() T) Iterator[T] {
	return &lazy[T]{split: func() (T, iter.Seq[T]) {
		return fn(), func(yield func(T) bool) {
			for yield(fn()) {
			}
		}
	}}
}

// RepeatN creates an iterator that yields v exactly n times.
// It panics with ErrInvalidCount when n is less than one.
func RepeatN[T any](v T, n int) Iterator[T] {
	if n < 1 {
		panic(ErrInvalidCount.F("RepeatN(%d)", n))
	}
	return &lazy[T]{split: func() (T, iter.Seq[T]) {
		return v, func(yield func(T) bool) {
			for range n - 1 {
				if !yield(v) {
					return
				}
			}
		}
	}}
}

// Successors creates an iterator which starts with the initial value
// and computes each further value from the preceding one.
// The iteration ends when next reports false.
func Successors[T any](initial T, next func(T) (T, bool)) Iterator[T] {
	return &lazy[T]{split: func() (T, iter.Seq[T]) {
		return initial, func(yield func(T) bool) {
			for v, ok := next(initial); ok; v, ok = next(v) {
				if !yield(v) {
					return
				}
			}
		}
	}}
}
