package nonempty

import (
	"cmp"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Count consumes the iterator and returns the number of values it yielded, which is at least one.
func Count[T any](i Iterator[T]) int {
	return iterkit.Count(i.Seq())
}

// Collect consumes the iterator and returns its values in a slice that has at least one element.
func Collect[T any](i Iterator[T]) []T {
	head, tail := i.First()
	return append([]T{head}, iterkit.Collect(tail)...)
}

// Last consumes the iterator and returns its last value.
func Last[T any](i Iterator[T]) T {
	head, tail := i.First()
	if last, ok := iterkit.Last(tail); ok {
		return last
	}
	return head
}

// Reduce folds the values of the iterator into a single one,
// using the head as the initial value.
func Reduce[T any](i Iterator[T], fn func(T, T) T) T {
	head, tail := i.First()
	return iterkit.Reduce1(tail, head, fn)
}

// Max returns the greatest value of the iterator.
func Max[T cmp.Ordered](i Iterator[T]) T {
	return Reduce(i, func(a, b T) T { return max(a, b) })
}

// Min returns the smallest value of the iterator.
func Min[T cmp.Ordered](i Iterator[T]) T {
	return Reduce(i, func(a, b T) T { return min(a, b) })
}

// MaxFunc returns the greatest value of the iterator, using compare to order them.
// If there is more than one maximal value, MaxFunc returns the first one.
func MaxFunc[T any](i Iterator[T], compare func(a, b T) int) T {
	return Reduce(i, func(acc, v T) T {
		if compare(v, acc) > 0 {
			return v
		}
		return acc
	})
}

// MinFunc returns the smallest value of the iterator, using compare to order them.
// If there is more than one minimal value, MinFunc returns the first one.
func MinFunc[T any](i Iterator[T], compare func(a, b T) int) T {
	return Reduce(i, func(acc, v T) T {
		if compare(v, acc) < 0 {
			return v
		}
		return acc
	})
}

// MaxBy returns the value with the greatest key.
// If there is more than one value with the maximal key, MaxBy returns the first one.
func MaxBy[T any, K cmp.Ordered](i Iterator[T], key func(T) K) T {
	return MaxFunc(i, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

// MinBy returns the value with the smallest key.
// If there is more than one value with the minimal key, MinBy returns the first one.
func MinBy[T any, K cmp.Ordered](i Iterator[T], key func(T) K) T {
	return MinFunc(i, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}
