package fenwick

// Builder accumulates unsummed values for a one-shot O(n) tree build.
// A user calls PushBack()s followed by Build().
type Builder[T Value] struct {
	vals []T
}

// NewBuilder returns an empty Builder.
func NewBuilder[T Value]() *Builder[T] {
	return &Builder[T]{}
}

// PushBack appends val to the pending sequence.
func (b *Builder[T]) PushBack(val T) {
	b.vals = append(b.vals, val)
}

// Len returns the number of pending values.
func (b *Builder[T]) Len() int {
	return len(b.vals)
}

// Build turns the accumulated values into a Tree in O(n). The pending
// slice moves into the tree without copying; the Builder is reset and
// can be reused.
func (b *Builder[T]) Build() *Tree[T] {
	vals := b.vals
	b.vals = nil
	return build(vals)
}
