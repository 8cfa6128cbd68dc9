// Package ilist provides a generic intrusive doubly-linked list.
//
// Unlike container/list, the list does not allocate wrapper nodes: the links
// live in a Node field embedded in the element itself, so linking and
// unlinking never touch the heap and never copy or own the element. One
// element type may embed several Node fields under different tag types and
// belong to several independent lists at once.
//
// To use the list, declare a tag type that tells the list where an element's
// Node field lives:
//
//	type Task struct {
//		Name string
//		run  ilist.Node[Task, ByRun]
//	}
//
//	type ByRun struct{}
//
//	func (ByRun) NodeOf(t *Task) *ilist.Node[Task, ByRun] { return &t.run }
//
// The zero value of List is an empty list ready to use:
//
//	var runnable ilist.List[Task, ByRun]
//	runnable.PushBack(&Task{Name: "a"})
//
//	for it := runnable.Begin(); it != runnable.End(); it = it.Next() {
//		// it.Elem() is a *Task.
//	}
//
// The list only links and unlinks elements; their lifetime is entirely the
// caller's concern. None of the operations are goroutine-safe.
package ilist
