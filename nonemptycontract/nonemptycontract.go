// Package nonemptycontract holds the behavioural contract of nonempty.Iterator.
//
// The make function must build a fresh iterator on every call,
// and each of them should yield the same sequence of values.
// Infinite iterators are checked through their first values only.
package nonemptycontract

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/nonempty"
)

// SampleSize is the number of values checked from a possibly infinite iterator.
const SampleSize = 64

func Iterator[T any](mk contract.Make[nonempty.Iterator[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) nonempty.Iterator[T] {
		return mk(t)
	})

	sample := func(seq iter.Seq[T], n int) []T {
		return iterkit.Collect(iterkit.Head(seq, n))
	}

	s.Then("it yields at least one value", func(t *testcase.T) {
		vs := sample(subject.Get(t).Seq(), SampleSize)
		assert.NotEmpty(t, vs)
	})

	s.Then("the head followed by the tail is the same as the ordinary sequence", func(t *testcase.T) {
		head, tail := subject.Get(t).First()
		got := append([]T{head}, sample(tail, SampleSize-1)...)
		exp := sample(mk(t).Seq(), SampleSize)
		assert.Equal(t, exp, got)
	})

	s.Then("converting the ordinary sequence back with From is lossless", func(t *testcase.T) {
		p, ok := nonempty.From(subject.Get(t).Seq())
		assert.True(t, ok)
		assert.Equal(t, sample(mk(t).Seq(), SampleSize), sample(p.Seq(), SampleSize))
	})

	s.Then("it can't be used again after First", func(t *testcase.T) {
		i := subject.Get(t)
		_, _ = i.First()
		assertConsumed(t, func() { _, _ = i.First() })
		assertConsumed(t, func() { _ = i.Seq() })
	})

	s.Then("it can't be used again after Seq", func(t *testcase.T) {
		i := subject.Get(t)
		_ = i.Seq()
		assertConsumed(t, func() { _ = i.Seq() })
		assertConsumed(t, func() { _, _ = i.First() })
	})

	return s.AsSuite("nonempty.Iterator")
}

func assertConsumed(t *testcase.T, blk func()) {
	t.Helper()
	got := assert.Panic(t, blk)
	err, ok := got.(error)
	assert.True(t, ok, "error value was expected as panic value")
	assert.ErrorIs(t, err, nonempty.ErrConsumed)
}
