package nonempty

import (
	"context"
	"iter"
	"reflect"
	"runtime"
	"sync/atomic"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// Peeked is an Iterator with its head value already at hand.
// It is the head and tail pair of a non-empty iterator.
//
// Only the constructors of this package make a valid Peeked,
// the zero value panics with ErrExhausted when it is used.
type Peeked[T any] struct {
	consumable
	head T
	tail iter.Seq[T]
}

func (*Peeked[T]) nonEmpty() {}

// Peek returns the head value without consuming the iterator.
func (p *Peeked[T]) Peek() T { return p.head }

func (p *Peeked[T]) First() (T, iter.Seq[T]) {
	p.use()
	return p.head, p.tail
}

func (p *Peeked[T]) Seq() iter.Seq[T] {
	p.use()
	return prepend(p.head, p.tail)
}

func (p *Peeked[T]) use() {
	if p.tail == nil {
		panic(ErrExhausted.F("Peeked[%s] was not made by a constructor", reflect.TypeFor[T]()))
	}
	p.consume()
}

// Of creates a non-empty iterator from the given values.
// The signature itself makes sure there is at least one.
func Of[T any](head T, tail ...T) *Peeked[T] {
	return &Peeked[T]{head: head, tail: iterkit.FromSlice(tail)}
}

// Once creates an iterator that yields a single value.
func Once[T any](v T) *Peeked[T] {
	return &Peeked[T]{head: v, tail: iterkit.Empty[T]()}
}

// FromSlice makes a non-empty iterator from a slice.
// It reports false when the slice has no elements.
func FromSlice[T any](vs []T) (*Peeked[T], bool) {
	if len(vs) == 0 {
		return nil, false
	}
	return Of(vs[0], vs[1:]...), true
}

// From attempts to turn an ordinary sequence into a non-empty iterator.
// It pulls exactly one value from the sequence to prove that it is not empty,
// and reports false when the sequence had nothing to yield.
//
// The rest of the sequence is continued from where the first pull left off,
// so the source is iterated only once.
// This makes From safe to use with single use sequences, such as generators with side effects.
func From[T any](seq iter.Seq[T]) (*Peeked[T], bool) {
	if seq == nil {
		return nil, false
	}
	next, stop := iter.Pull(seq)
	head, ok := next()
	if !ok {
		stop()
		return nil, false
	}
	tail := newPullTail(next, stop)
	return &Peeked[T]{head: head, tail: tail.Seq}, true
}

// Peek consumes an Iterator and returns it as a Peeked, which gives access to the head value.
func Peek[T any](i Iterator[T]) *Peeked[T] {
	head, tail := i.First()
	return &Peeked[T]{head: head, tail: tail}
}

// pullTail is the remainder of a sequence that From already started to pull.
type pullTail[T any] struct{ seq iter.Seq[T] }

func newPullTail[T any](next func() (T, bool), stop func()) *pullTail[T] {
	rel := &pullRelease{stop: stop, valueType: reflect.TypeFor[T]()}
	pt := &pullTail[T]{seq: iterkit.FromPull(next, func() { rel.Release() })}
	// a tail that is never ranged over would keep the pulled source suspended forever
	runtime.AddCleanup(pt, releaseAbandoned, rel)
	return pt
}

func (pt *pullTail[T]) Seq(yield func(T) bool) { pt.seq(yield) }

type pullRelease struct {
	stop      func()
	released  atomic.Bool
	valueType reflect.Type
}

func (r *pullRelease) Release() bool {
	if !r.released.CompareAndSwap(false, true) {
		return false
	}
	r.stop()
	return true
}

func releaseAbandoned(r *pullRelease) {
	if r.Release() {
		logger.Debug(context.Background(), "nonempty: released the source of an abandoned iterator tail",
			logging.Field("type", r.valueType.String()))
	}
}
