// Package fenwick provides a generic Fenwick tree (binary indexed tree)
// supporting prefix-sum, range-sum and rank queries over a sequence of
// numeric elements, with point updates and queries in O(log n).
package fenwick

import (
	"fmt"
	"math/bits"

	"github.com/ugorji/go/codec"
	"golang.org/x/exp/constraints"
)

// Value is the set of element types a Tree can hold: anything with
// addition, subtraction, a zero value and a total order.
type Value interface {
	constraints.Signed | constraints.Unsigned | constraints.Float
}

// Tree is the core of the library. It stores partial sums of a logical
// sequence of Size() elements in a slice padded to a power of two, so
// that the last slot always holds the grand total.
//
// Slot k (1-based) covers the block of lsb(k) elements ending at k.
// The public API is 0-based and all ranges are inclusive on both ends.
type Tree[T Value] struct {
	data []T
	size int
}

func lsb(i int) int {
	return i & -i
}

// nextPow2 returns the smallest power of two >= n, or 0 for n == 0.
func nextPow2(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << bits.Len(uint(n-1))
}

// New returns a Tree with size logical elements, all zero.
func New[T Value](size int) *Tree[T] {
	return &Tree[T]{
		data: make([]T, nextPow2(size)),
		size: size,
	}
}

// FromSlice returns a Tree seeded with the given unsummed values.
// Construction is O(n): values are copied once and each slot is folded
// into its parent in a single pass.
func FromSlice[T Value](values []T) *Tree[T] {
	vals := make([]T, len(values), nextPow2(len(values)))
	copy(vals, values)
	return build(vals)
}

// build takes ownership of vals and turns it in place into the internal
// partial-sum layout, padding to a power of two.
func build[T Value](vals []T) *Tree[T] {
	size := len(vals)
	var zero T
	for len(vals) < nextPow2(size) {
		vals = append(vals, zero)
	}
	for i := 1; i <= len(vals); i++ {
		if j := i + lsb(i); j <= len(vals) {
			vals[j-1] += vals[i-1]
		}
	}
	return &Tree[T]{data: vals, size: size}
}

// Len returns the number of logical elements.
func (t *Tree[T]) Len() int {
	return t.size
}

// End returns the largest valid index, or -1 for an empty tree.
func (t *Tree[T]) End() int {
	return t.size - 1
}

// Add adds delta to the element at index idx.
func (t *Tree[T]) Add(idx int, delta T) {
	t.checkIndex(idx)
	for i := idx + 1; i <= len(t.data); i += lsb(i) {
		t.data[i-1] += delta
	}
}

// Sub subtracts delta from the element at index idx. Kept separate from
// Add so unsigned element types can be adjusted downward.
func (t *Tree[T]) Sub(idx int, delta T) {
	t.checkIndex(idx)
	for i := idx + 1; i <= len(t.data); i += lsb(i) {
		t.data[i-1] -= delta
	}
}

// Set overwrites the element at index idx with value.
func (t *Tree[T]) Set(idx int, value T) {
	cur := t.Get(idx)
	if cur <= value {
		t.Add(idx, value-cur)
	} else {
		t.Sub(idx, cur-value)
	}
}

// Get returns the element at index idx.
func (t *Tree[T]) Get(idx int) T {
	return t.RangeSum(idx, idx)
}

// PrefixSum returns the sum of the elements at indices [0, idx].
func (t *Tree[T]) PrefixSum(idx int) T {
	t.checkIndex(idx)
	var sum T
	for i := idx + 1; i > 0; i -= lsb(i) {
		sum += t.data[i-1]
	}
	return sum
}

// RangeSum returns the sum of the elements at indices [i, j], both ends
// inclusive. The two climbs stop where their paths to the root merge,
// so shared ancestors are never read.
func (t *Tree[T]) RangeSum(i, j int) T {
	t.checkRange(i, j)
	var sum T
	a, b := i, j+1
	for b > a {
		sum += t.data[b-1]
		b -= lsb(b)
	}
	for a > b {
		sum -= t.data[a-1]
		a -= lsb(a)
	}
	return sum
}

// Total returns the sum of all elements in O(1). The padding slots are
// logically zero, so the last slot always equals the grand total.
func (t *Tree[T]) Total() T {
	var zero T
	if len(t.data) == 0 {
		return zero
	}
	return t.data[len(t.data)-1]
}

// RankQuery returns the largest index whose prefix sum is <= value.
// The second return is false when no index qualifies, i.e. when even
// PrefixSum(0) exceeds value. All elements must be non-negative.
//
// The search is a binary-lifting descent over the slot layout: starting
// from the full padded length and halving, a step is taken whenever the
// accumulated sum stays within value. No prefix-sum calls are made.
func (t *Tree[T]) RankQuery(value T) (int, bool) {
	t.checkNonNegative()
	var acc T
	pos := 0
	for step := len(t.data); step > 0; step >>= 1 {
		if next := pos + step; next <= len(t.data) && acc+t.data[next-1] <= value {
			acc += t.data[next-1]
			pos = next
		}
	}
	if pos == 0 {
		return 0, false
	}
	if pos > t.size {
		// Landed in the padding: every logical prefix qualifies.
		pos = t.size
	}
	return pos - 1, true
}

// MinRankQuery returns the smallest index whose prefix sum is >= value.
// The second return is false when Total() < value. All elements must be
// non-negative.
//
// The descent finds the largest position with prefix sum strictly below
// value; the slot after it is the answer.
func (t *Tree[T]) MinRankQuery(value T) (int, bool) {
	t.checkNonNegative()
	var acc T
	pos := 0
	for step := len(t.data); step > 0; step >>= 1 {
		if next := pos + step; next <= len(t.data) && acc+t.data[next-1] < value {
			acc += t.data[next-1]
			pos = next
		}
	}
	if pos >= t.size {
		return 0, false
	}
	return pos, true
}

// Scan calls fn with each index and its prefix sum, in order, stopping
// early if fn returns false.
func (t *Tree[T]) Scan(fn func(idx int, sum T) bool) {
	for i := 0; i < t.size; i++ {
		if !fn(i, t.PrefixSum(i)) {
			return
		}
	}
}

// Values returns the logical (unsummed) elements as a fresh slice. Runs
// in O(n) by undoing the parent folds in a reverse pass.
func (t *Tree[T]) Values() []T {
	vals := make([]T, len(t.data))
	copy(vals, t.data)
	for i := len(vals); i >= 1; i-- {
		if j := i + lsb(i); j <= len(vals) {
			vals[j-1] -= vals[i-1]
		}
	}
	return vals[:t.size]
}

// Append grows the logical sequence by one element holding value.
// O(log n) while the padded capacity lasts; crossing a power-of-two
// boundary rebuilds the tree, so growth is O(log n) amortized.
func (t *Tree[T]) Append(value T) {
	if t.size == len(t.data) {
		grown := build(append(t.Values(), value))
		t.data, t.size = grown.data, grown.size
		return
	}
	t.size++
	t.Add(t.size-1, value)
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("Fenwick<size=%d, total=%v>", t.size, t.Total())
}

// MarshalBinary encodes the Tree into a binary form and returns the result.
func (t *Tree[T]) MarshalBinary() (out []byte, err error) {
	var bh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &bh)
	err = enc.Encode(t.size)
	if err != nil {
		return
	}
	err = enc.Encode(t.data)
	return
}

// UnmarshalBinary decodes a Tree from a binary form generated by
// MarshalBinary.
func (t *Tree[T]) UnmarshalBinary(in []byte) (err error) {
	var bh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(in, &bh)
	size := 0
	err = dec.Decode(&size)
	if err != nil {
		return
	}
	var data []T
	err = dec.Decode(&data)
	if err != nil {
		return
	}
	if size < 0 || len(data) != nextPow2(size) {
		return fmt.Errorf("fenwick: corrupt encoding: size %d, slots %d", size, len(data))
	}
	t.size = size
	t.data = data
	return
}
