// Package nonempty provides iterators that are guaranteed to yield at least one value.
//
// # Summary
//
// An ordinary iter.Seq can range from zero to infinity,
// so every consumer that needs "the first" or "the last" value has to deal with the empty case.
// A nonempty.Iterator carries the proof of having at least one value in its type,
// thus functions like Last, Reduce or Max can return a plain value instead of a (T, bool) pair.
//
// The proof is made once, at construction:
// either by a constructor that is non-empty by its signature (Of, Once, Repeat),
// or by From, which pulls the first value from an iter.Seq and reports when there was none.
// Adapters that keep the guarantee (Map, Chain, Zip, Cycle...) are offered on Iterator,
// while the ones that could lose it (filtering, skipping) are not.
// For those, fall back to the ordinary sequence with Iterator.Seq, and re-validate with From.
//
// An Iterator is single use: First or Seq consumes it, and using it again is a programming error.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package nonempty

import (
	"iter"
	"sync/atomic"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
)

const (
	// ErrConsumed is the panic value when an Iterator is used after First or Seq was already called on it.
	ErrConsumed errorkit.Error = "nonempty: iterator is already consumed"
	// ErrInvalidCount is the panic value when a count argument would break the non-empty guarantee.
	ErrInvalidCount errorkit.Error = "nonempty: count must be at least one"
	// ErrExhausted signals a broken invariant, an Iterator that had no value to yield.
	ErrExhausted errorkit.Error = "nonempty: iterator yielded no values"
)

// Iterator is an iterator that yields at least one value.
//
// Values of Iterator can only be made by this package,
// so holding one is the proof that the first value exists.
type Iterator[T any] interface {
	// First consumes the iterator and splits it into its head value and its possibly empty tail.
	First() (head T, tail iter.Seq[T])
	// Seq consumes the iterator and returns it as an ordinary sequence,
	// yielding the head followed by the tail.
	// The returned sequence is single use, ranging over it again yields nothing.
	Seq() iter.Seq[T]

	nonEmpty()
}

type consumable struct{ done atomic.Bool }

func (c *consumable) consume() {
	if !c.done.CompareAndSwap(false, true) {
		panic(ErrConsumed)
	}
}

// lazy is the Iterator behind the adapters.
// At least one of split and all must be set, the missing one is derived from the other.
type lazy[T any] struct {
	consumable
	split func() (T, iter.Seq[T])
	all   func() iter.Seq[T]
}

func (*lazy[T]) nonEmpty() {}

func (i *lazy[T]) First() (T, iter.Seq[T]) {
	i.consume()
	if i.split != nil {
		return i.split()
	}
	return splitSeq(i.all())
}

func (i *lazy[T]) Seq() iter.Seq[T] {
	i.consume()
	if i.all != nil {
		return iterkit.Once(i.all())
	}
	return prepend(i.split())
}

// splitSeq takes the head of a sequence that is known to be non-empty.
func splitSeq[T any](seq iter.Seq[T]) (T, iter.Seq[T]) {
	p, ok := From(seq)
	if !ok {
		panic(ErrExhausted)
	}
	return p.First()
}

func prepend[T any](head T, tail iter.Seq[T]) iter.Seq[T] {
	return iterkit.Once(iterkit.Merge(iterkit.Of(head), tail))
}
