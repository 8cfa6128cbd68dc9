package ilist_test

import (
	"container/list"
	"testing"
)

// The benchmarks compare against container/list, whose per-push Element
// allocation is exactly the overhead the intrusive layout avoids.

func BenchmarkList_PushPopBack(b *testing.B) {
	b.Run("ilist", func(b *testing.B) {
		b.ReportAllocs()
		items := make([]item, b.N)
		l := initList()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.PushBack(&items[i])
		}
		for i := 0; i < b.N; i++ {
			l.PopBack()
		}
	})
	b.Run("container/list", func(b *testing.B) {
		b.ReportAllocs()
		l := list.New()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
		}
		for i := 0; i < b.N; i++ {
			l.Remove(l.Back())
		}
	})
}

func BenchmarkList_Traverse(b *testing.B) {
	const size = 1024

	b.Run("ilist", func(b *testing.B) {
		items := make([]item, size)
		l := initList()
		for i := range items {
			items[i].v = i
			l.PushBack(&items[i])
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sum := 0
			for it := l.Begin(); it != l.End(); it = it.Next() {
				sum += it.Elem().v
			}
		}
	})
	b.Run("container/list", func(b *testing.B) {
		l := list.New()
		for i := 0; i < size; i++ {
			l.PushBack(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sum := 0
			for e := l.Front(); e != nil; e = e.Next() {
				sum += e.Value.(int)
			}
		}
	})
}

func BenchmarkList_Splice(b *testing.B) {
	const size = 1024

	items := make([]item, size)
	a, c := initList(), initList()
	for i := range items {
		a.PushBack(&items[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Moving the whole chain back and forth is O(1) regardless of size.
		c.Splice(c.End(), a, a.Begin(), a.End())
		a.Splice(a.End(), c, c.Begin(), c.End())
	}
}
