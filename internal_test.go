package nonempty

import (
	"iter"
	"reflect"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase/assert"
)

func TestLazy_derivesTheMissingHalf(t *testing.T) {
	t.Run("split only", func(t *testing.T) {
		i := &lazy[int]{split: func() (int, iter.Seq[int]) {
			return 1, iterkit.IntRange(2, 3)
		}}
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(i.Seq()))
	})
	t.Run("all only", func(t *testing.T) {
		i := &lazy[int]{all: func() iter.Seq[int] {
			return iterkit.IntRange(1, 3)
		}}
		head, tail := i.First()
		assert.Equal(t, 1, head)
		assert.Equal(t, []int{2, 3}, iterkit.Collect(tail))
	})
}

func TestLazy_brokenInvariant(t *testing.T) {
	i := &lazy[int]{all: func() iter.Seq[int] {
		return iterkit.Empty[int]()
	}}
	got := assert.Panic(t, func() { _, _ = i.First() })
	err, ok := got.(error)
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestPullRelease(t *testing.T) {
	var stops int
	r := &pullRelease{stop: func() { stops++ }, valueType: reflect.TypeFor[int]()}
	releaseAbandoned(r)
	assert.Equal(t, 1, stops)
	assert.False(t, r.Release())
	releaseAbandoned(r)
	assert.Equal(t, 1, stops)
}
