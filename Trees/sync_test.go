package Trees

import (
	"sync"
	"testing"

	"github.com/cornelk/hashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncTree_ConcurrentInsert(t *testing.T) {
	const workers, perWorker = 8, 2000
	tree := NewSync(New[int]())
	seen := hashmap.New[int, int]()
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				// workers overlap on half their range to exercise duplicates.
				v := w*perWorker/2 + i
				if tree.Insert(v) {
					seen.Set(v, w)
				}
				_ = tree.Has(v)
				_ = tree.Height()
			}
		}()
	}
	wg.Wait()

	require.False(t, tree.Corrupt())
	assert.Equal(t, seen.Len(), tree.Size())
	assert.Equal(t, (workers+1)*perWorker/2, tree.Size())
	seen.Range(func(v, _ int) bool {
		assert.True(t, tree.Has(v), "missing %d", v)
		return true
	})
	tree.View(func(u *AVLTree[int]) {
		assert.Equal(t, u.Size(), u.CountNodes())
		assert.LessOrEqual(t, float64(u.Height()), heightBound(u.Size()))
	})
}

func TestSyncTree_SnapshotIterator(t *testing.T) {
	tree := NewSync(New[int]())
	for _, v := range []int{3, 1, 2} {
		tree.Insert(v)
	}
	next := tree.InOrder()
	tree.Insert(0)
	tree.Clear()
	var got []int
	for v, ok := next(); ok; v, ok = next() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Zero(t, tree.Size())
	_, ok := tree.Maximum()
	assert.False(t, ok)
}
