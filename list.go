package ilist

// Node is the embeddable link record. An element participates in a tagged
// list by embedding one Node field per tag; the Node stores only the
// adjacency and a back-reference to its element, set when it is first linked.
//
// The zero value is a detached node. Two Nodes instantiated with different
// tags are distinct types and can never end up on the same chain.
type Node[T any, M any] struct {
	next, prev *Node[T, M]
	elem       *T
}

// Linked reports whether n is currently on a list.
func (n *Node[T, M]) Linked() bool {
	return n.next != nil
}

// Unlink removes n from whatever chain it is on, bridging its former
// neighbors, and leaves it detached. Calling Unlink on a detached node is a
// no-op, so unlinking twice is safe.
func (n *Node[T, M]) Unlink() {
	if n.next != nil {
		n.next.prev = n.prev
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	n.next = nil
	n.prev = nil
}

// Mapper associates elements with their Node field for one tag. The tag type
// implements Mapper on itself (M is the implementing type), which makes the
// tag a pure compile-time discriminator: mappers are zero-size and NodeOf
// calls inline to a field selection.
type Mapper[T any, M any] interface {
	NodeOf(*T) *Node[T, M]
}

// List is an intrusive doubly-linked list of *T, tagged by M. It is a
// circular chain around an embedded sentinel node, so every structural
// operation, splice and swap included, is a constant number of pointer
// rewrites.
//
// The zero value is an empty list ready to use. A List must not be copied
// after first use (the chain references the embedded sentinel by address);
// use Swap or PushBackList to transfer a chain between lists.
//
// The list never owns its elements: it does not allocate, copy or free them,
// it only relinks the Node fields embedded in them.
type List[T any, M Mapper[T, M]] struct {
	root Node[T, M] // sentinel; root.next is front, root.prev is back
}

// New creates an empty list. Equivalent to declaring a zero List value.
func New[T any, M Mapper[T, M]]() *List[T, M] {
	l := &List[T, M]{}
	l.Init()
	return l
}

// Init resets l to an empty list. Nodes that were on l are not detached;
// use Clear for that.
func (l *List[T, M]) Init() {
	l.root.next = &l.root
	l.root.prev = &l.root
}

func (l *List[T, M]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

func nodeOf[T any, M Mapper[T, M]](e *T) *Node[T, M] {
	var m M
	return m.NodeOf(e)
}

// Empty reports whether l has no elements.
func (l *List[T, M]) Empty() bool {
	return l.root.next == nil || l.root.next == &l.root
}

// Len counts the elements in l. It walks the chain: the list keeps no
// element count because Splice moves ranges of unknown length in O(1).
func (l *List[T, M]) Len() int {
	if l.root.next == nil {
		return 0
	}
	n := 0
	for at := l.root.next; at != &l.root; at = at.next {
		n++
	}
	return n
}

// Front returns the first element of l, or nil if l is empty.
func (l *List[T, M]) Front() *T {
	if l.Empty() {
		return nil
	}
	return l.root.next.elem
}

// Back returns the last element of l, or nil if l is empty.
func (l *List[T, M]) Back() *T {
	if l.Empty() {
		return nil
	}
	return l.root.prev.elem
}

// insert links n, carrying e, immediately before at.
func (l *List[T, M]) insert(n *Node[T, M], at *Node[T, M], e *T) {
	if n.next != nil {
		panic("ilist: pushing an element that is already on a list")
	}
	n.elem = e
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
}

// PushFront inserts e at the front of l.
// It panics if e's node for this tag is already linked.
func (l *List[T, M]) PushFront(e *T) {
	l.lazyInit()
	l.insert(nodeOf[T, M](e), l.root.next, e)
}

// PushBack inserts e at the back of l.
// It panics if e's node for this tag is already linked.
func (l *List[T, M]) PushBack(e *T) {
	l.lazyInit()
	l.insert(nodeOf[T, M](e), &l.root, e)
}

// PopFront unlinks and returns the first element of l, or nil if l is empty.
func (l *List[T, M]) PopFront() *T {
	if l.Empty() {
		return nil
	}
	n := l.root.next
	n.Unlink()
	return n.elem
}

// PopBack unlinks and returns the last element of l, or nil if l is empty.
func (l *List[T, M]) PopBack() *T {
	if l.Empty() {
		return nil
	}
	n := l.root.prev
	n.Unlink()
	return n.elem
}

// Remove unlinks e from l. It is equivalent to unlinking e's node directly
// and exists for symmetry with PushFront/PushBack; e must be an element of l
// or detached.
func (l *List[T, M]) Remove(e *T) {
	nodeOf[T, M](e).Unlink()
}

// MoveToFront moves element e of l to the front of l.
func (l *List[T, M]) MoveToFront(e *T) {
	l.lazyInit()
	n := nodeOf[T, M](e)
	if l.root.next == n {
		return
	}
	n.Unlink()
	l.insert(n, l.root.next, e)
}

// MoveToBack moves element e of l to the back of l.
func (l *List[T, M]) MoveToBack(e *T) {
	l.lazyInit()
	n := nodeOf[T, M](e)
	if l.root.prev == n {
		return
	}
	n.Unlink()
	l.insert(n, &l.root, e)
}

// Begin returns an iterator at the first element of l. Begin equals End when
// l is empty.
func (l *List[T, M]) Begin() Iterator[T, M] {
	l.lazyInit()
	return Iterator[T, M]{l.root.next}
}

// End returns the iterator one past the last element. It is a valid position
// for Insert and Splice but must not be dereferenced or erased.
func (l *List[T, M]) End() Iterator[T, M] {
	l.lazyInit()
	return Iterator[T, M]{&l.root}
}

// Insert links e immediately before pos and returns an iterator at e.
// Inserting before End is equivalent to PushBack.
// It panics if e's node for this tag is already linked.
func (l *List[T, M]) Insert(pos Iterator[T, M], e *T) Iterator[T, M] {
	l.lazyInit()
	n := nodeOf[T, M](e)
	l.insert(n, pos.n, e)
	return Iterator[T, M]{n}
}

// Erase unlinks the element at pos and returns an iterator at the position
// that followed it. It panics if pos is the End of l.
func (l *List[T, M]) Erase(pos Iterator[T, M]) Iterator[T, M] {
	if pos.n == &l.root {
		panic("ilist: erasing the end position")
	}
	next := pos.n.next
	pos.n.Unlink()
	return Iterator[T, M]{next}
}

// Splice moves the range [first, last) out of other's chain and links it,
// relative order preserved, immediately before pos in l. The cost is a fixed
// number of pointer rewrites regardless of how many elements the range holds,
// which is also why it is a no-op if first equals last and undefined if pos
// lies inside [first, last).
//
// l and other may be the same list as long as pos is outside the range.
func (l *List[T, M]) Splice(pos Iterator[T, M], other *List[T, M], first, last Iterator[T, M]) {
	if first == last {
		return
	}
	fromLeft := first.n
	fromRight := last.n.prev

	// Close the gap in other first, so that a pos adjacent to the range
	// still reads consistent links below.
	fromLeft.prev.next = fromRight.next
	fromRight.next.prev = fromLeft.prev

	toRight := pos.n
	toLeft := toRight.prev
	toLeft.next = fromLeft
	toRight.prev = fromRight
	fromLeft.prev = toLeft
	fromRight.next = toRight
}

// PushBackList moves all elements of other to the back of l, leaving other
// empty. Together with Clear this expresses chain ownership transfer between
// lists. A list spliced onto itself is unchanged.
func (l *List[T, M]) PushBackList(other *List[T, M]) {
	l.lazyInit()
	l.Splice(l.End(), other, other.Begin(), other.End())
}

// Swap exchanges the entire chains of l and other: the boundary nodes of
// each chain are re-pointed at the other sentinel and the sentinel records
// are exchanged. Either or both lists may be empty.
func (l *List[T, M]) Swap(other *List[T, M]) {
	l.lazyInit()
	other.lazyInit()

	// Re-point each chain's boundary at the other sentinel. For an empty
	// list the "boundary" is its own sentinel, so the writes below land on
	// the sentinel record and the final exchange restores self-reference.
	lNext, lPrev := l.root.next, l.root.prev
	lNext.prev = &other.root
	lPrev.next = &other.root

	oNext, oPrev := other.root.next, other.root.prev
	oNext.prev = &l.root
	oPrev.next = &l.root

	l.root, other.root = other.root, l.root
}

// Clear unlinks all elements from the front until l is empty. The elements
// themselves are untouched beyond detaching their nodes.
func (l *List[T, M]) Clear() {
	if l.root.next == nil {
		return
	}
	for l.root.next != &l.root {
		l.root.next.Unlink()
	}
}
