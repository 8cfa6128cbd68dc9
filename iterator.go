package ilist

// Iterator is a bidirectional position in a list's chain, including the end
// sentinel as a valid, non-dereferenceable position. It identifies a node,
// not an index: two iterators are equal (==) iff they reference the same
// node, and an iterator stays valid until that node is unlinked, regardless
// of insertions and erasures elsewhere or of Swap/PushBackList moving the
// chain between lists.
//
// Obtain iterators from Begin, End, Insert or Erase; the zero Iterator is
// not a valid position.
type Iterator[T any, M any] struct {
	n *Node[T, M]
}

// Elem returns the element at the iterator's position, or nil at End.
func (it Iterator[T, M]) Elem() *T {
	return it.n.elem
}

// Next returns the position after it. Advancing past the last element yields
// End; advancing past End wraps to the first element, as the sentinel is part
// of the same circular chain.
func (it Iterator[T, M]) Next() Iterator[T, M] {
	return Iterator[T, M]{it.n.next}
}

// Prev returns the position before it. Retreating from End yields the last
// element.
func (it Iterator[T, M]) Prev() Iterator[T, M] {
	return Iterator[T, M]{it.n.prev}
}
