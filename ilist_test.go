package ilist_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/motoki317/ilist"
)

// item is the element type used throughout the list tests. It carries a
// single tagged node.
type item struct {
	v    int
	node ilist.Node[item, byOrder]
}

type byOrder struct{}

func (byOrder) NodeOf(i *item) *ilist.Node[item, byOrder] { return &i.node }

type itemList = ilist.List[item, byOrder]

func newItems(vs ...int) []*item {
	return lo.Map(vs, func(v int, _ int) *item { return &item{v: v} })
}

func initList(vs ...int) *itemList {
	l := ilist.New[item, byOrder]()
	for _, it := range newItems(vs...) {
		l.PushBack(it)
	}
	return l
}

// values collects list contents front to back.
func values(l *itemList) []int {
	var vs []int
	for it := l.Begin(); it != l.End(); it = it.Next() {
		vs = append(vs, it.Elem().v)
	}
	return vs
}

// checkList asserts the list holds exactly vs, walking the chain in both
// directions so that a broken prev link cannot go unnoticed.
func checkList(t *testing.T, l *itemList, vs ...int) {
	t.Helper()
	require.Equal(t, vs, values(l), "forward walk")

	var back []int
	for it := l.End().Prev(); it != l.End(); it = it.Prev() {
		back = append([]int{it.Elem().v}, back...)
	}
	require.Equal(t, vs, back, "backward walk")

	require.Equal(t, len(vs), l.Len())
	require.Equal(t, len(vs) == 0, l.Empty())
}

// task carries two independent tagged nodes, so one task can be on a run
// list and a wait list at the same time.
type task struct {
	name string
	run  ilist.Node[task, byRun]
	wait ilist.Node[task, byWait]
}

type byRun struct{}

func (byRun) NodeOf(t *task) *ilist.Node[task, byRun] { return &t.run }

type byWait struct{}

func (byWait) NodeOf(t *task) *ilist.Node[task, byWait] { return &t.wait }
