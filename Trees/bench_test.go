package Trees

import (
	"math/rand"
	"testing"
)

const (
	size = 1 << 15
	iter = 10
)

func BenchmarkAVLTree_Insert(b *testing.B) {
	var t *AVLTree[int]
	for i := 0; i < b.N; i++ {
		t = New[int]()
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
	}
	b.Log(t.Height())
}

func BenchmarkAVLTree_InsertAscending(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := New[int]()
		for j := range size {
			t.Insert(j)
		}
	}
}

func BenchmarkAVLTree_Has(b *testing.B) {
	t := New[int]()
	for _, j := range rand.Perm(size) {
		t.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range iter {
			_ = t.Has(j * size / iter)
		}
	}
}

func BenchmarkSyncTree_Insert(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		t := NewSync(New[int]())
		for j := 0; pb.Next(); j++ {
			t.Insert(j % size)
		}
	})
}
