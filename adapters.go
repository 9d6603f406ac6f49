package nonempty

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Map transforms each value of the iterator with the transform function.
// The result has as many values as the input, so it stays non-empty.
func Map[To any, From any](i Iterator[From], transform func(From) To) Iterator[To] {
	return &lazy[To]{
		split: func() (To, iter.Seq[To]) {
			head, tail := i.First()
			return transform(head), iterkit.Map(tail, transform)
		},
		all: func() iter.Seq[To] {
			return iterkit.Map(i.Seq(), transform)
		},
	}
}

// Chain links the non-empty iterator with further, possibly empty, sequences.
// To chain two non-empty iterators, pass the second one's Seq.
// Nil sequences are treated as empty.
func Chain[T any](i Iterator[T], others ...iter.Seq[T]) Iterator[T] {
	chain := func(first iter.Seq[T]) iter.Seq[T] {
		seqs := []iter.Seq[T]{first}
		for _, seq := range others {
			if seq != nil {
				seqs = append(seqs, seq)
			}
		}
		return iterkit.Merge(seqs...)
	}
	return &lazy[T]{
		split: func() (T, iter.Seq[T]) {
			head, tail := i.First()
			return head, chain(tail)
		},
		all: func() iter.Seq[T] {
			return chain(i.Seq())
		},
	}
}

// Zip pairs up the values of two non-empty iterators.
// The first pair is made from the two heads, and the iteration stops when either of the iterators runs out.
func Zip[A, B any](a Iterator[A], b Iterator[B]) Iterator[iterkit.KV[A, B]] {
	return &lazy[iterkit.KV[A, B]]{
		split: func() (iterkit.KV[A, B], iter.Seq[iterkit.KV[A, B]]) {
			aHead, aTail := a.First()
			bHead, bTail := b.First()
			return iterkit.KV[A, B]{K: aHead, V: bHead}, zip(aTail, bTail)
		},
		all: func() iter.Seq[iterkit.KV[A, B]] {
			return zip(a.Seq(), b.Seq())
		},
	}
}

func zip[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq[iterkit.KV[A, B]] {
	return func(yield func(iterkit.KV[A, B]) bool) {
		next, stop := iter.Pull(bs)
		defer stop()
		for a := range as {
			b, ok := next()
			if !ok {
				return
			}
			if !yield(iterkit.KV[A, B]{K: a, V: b}) {
				return
			}
		}
	}
}

// Enumerate pairs each value with its index, starting from zero.
func Enumerate[T any](i Iterator[T]) Iterator[iterkit.KV[int, T]] {
	return &lazy[iterkit.KV[int, T]]{
		split: func() (iterkit.KV[int, T], iter.Seq[iterkit.KV[int, T]]) {
			head, tail := i.First()
			return iterkit.KV[int, T]{K: 0, V: head}, enumerate(tail, 1)
		},
		all: func() iter.Seq[iterkit.KV[int, T]] {
			return enumerate(i.Seq(), 0)
		},
	}
}

func enumerate[T any](seq iter.Seq[T], from int) iter.Seq[iterkit.KV[int, T]] {
	return func(yield func(iterkit.KV[int, T]) bool) {
		n := from
		for v := range seq {
			if !yield(iterkit.KV[int, T]{K: n, V: v}) {
				return
			}
			n++
		}
	}
}

// Cycle repeats the iterator endlessly.
//
// The values of the first pass are kept in a buffer,
// and the following passes replay them in their original order,
// so the source is iterated only once.
// This works with single use sources as well,
// but the memory usage grows with the length of the first pass.
//
// Like every ordinary view of an Iterator, the result of Seq can be ranged over only once.
func Cycle[T any](i Iterator[T]) Iterator[T] {
	return &lazy[T]{all: func() iter.Seq[T] {
		src := i.Seq()
		return func(yield func(T) bool) {
			var buf []T
			for v := range src {
				buf = append(buf, v)
				if !yield(v) {
					return
				}
			}
			if len(buf) == 0 {
				return
			}
			for {
				for _, v := range buf {
					if !yield(v) {
						return
					}
				}
			}
		}
	}}
}

// Flatten removes one level of nesting.
// The head of the first inner iterator becomes the head of the result.
func Flatten[T any](i Iterator[Iterator[T]]) Iterator[T] {
	return &lazy[T]{
		split: func() (T, iter.Seq[T]) {
			inner, rest := i.First()
			head, tail := inner.First()
			return head, iterkit.Merge(tail, flatten(rest))
		},
		all: func() iter.Seq[T] {
			return flatten(i.Seq())
		},
	}
}

func flatten[T any](seq iter.Seq[Iterator[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range seq {
			for v := range inner.Seq() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FlatMap maps each value to a non-empty iterator, and flattens the result.
func FlatMap[To any, From any](i Iterator[From], transform func(From) Iterator[To]) Iterator[To] {
	return Flatten(Map(i, transform))
}

// Take yields at most the first n values of the iterator.
// It panics with ErrInvalidCount when n is less than one,
// since taking nothing can't result in a non-empty iterator.
// Use Limit when n can be zero.
func Take[T any](i Iterator[T], n int) Iterator[T] {
	if n < 1 {
		panic(ErrInvalidCount.F("Take(%d)", n))
	}
	return &lazy[T]{
		split: func() (T, iter.Seq[T]) {
			head, tail := i.First()
			return head, iterkit.Head(tail, n-1)
		},
		all: func() iter.Seq[T] {
			return iterkit.Head(i.Seq(), n)
		},
	}
}

// Limit yields at most the first n values of the iterator as an ordinary sequence.
// Unlike Take, n can be zero, in which case the result is empty.
func Limit[T any](i Iterator[T], n int) iter.Seq[T] {
	return iterkit.Head(i.Seq(), n)
}

// StepBy yields the head, and then every step-th value after it.
// It panics with ErrInvalidCount when step is less than one.
func StepBy[T any](i Iterator[T], step int) Iterator[T] {
	if step < 1 {
		panic(ErrInvalidCount.F("StepBy(%d)", step))
	}
	return &lazy[T]{split: func() (T, iter.Seq[T]) {
		head, tail := i.First()
		return head, func(yield func(T) bool) {
			var n int
			for v := range tail {
				n++
				if n%step != 0 {
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	}}
}

// Inspect calls fn with each value as it passes through the iteration.
func Inspect[T any](i Iterator[T], fn func(T)) Iterator[T] {
	return Map(i, func(v T) T {
		fn(v)
		return v
	})
}

// Reverse will reverse the iteration direction.
//
// # WARNING
//
// It does not work with infinite iterators,
// as it requires to collect all values before it can reverse the elements.
func Reverse[T any](i Iterator[T]) Iterator[T] {
	return &lazy[T]{all: func() iter.Seq[T] {
		return iterkit.Reverse(i.Seq())
	}}
}
