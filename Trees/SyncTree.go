package Trees

import "sync"

// SyncTree guards an AVLTree with a single RWMutex. Insert and Clear hold the
// write lock, queries the read lock, so a query never sees a rotation half done.
type SyncTree[T any] struct {
	mu sync.RWMutex
	t  *AVLTree[T]
}

// NewSync wraps t, which must not be used directly afterwards.
func NewSync[T any](t *AVLTree[T]) *SyncTree[T] {
	return &SyncTree[T]{t: t}
}

func (u *SyncTree[T]) Insert(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(v)
}

func (u *SyncTree[T]) Clear() {
	u.mu.Lock()
	u.t.Clear()
	u.mu.Unlock()
}

func (u *SyncTree[T]) Has(v T) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Has(v)
}

func (u *SyncTree[T]) Minimum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Minimum()
}

func (u *SyncTree[T]) Maximum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Maximum()
}

func (u *SyncTree[T]) Size() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Size()
}

func (u *SyncTree[T]) Height() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Height()
}

// InOrder snapshots the values under the read lock, so the returned iterator
// stays valid while other goroutines insert.
func (u *SyncTree[T]) InOrder() func() (T, bool) {
	u.mu.RLock()
	vs := make([]T, 0, u.t.Size())
	next := u.t.InOrder()
	for v, ok := next(); ok; v, ok = next() {
		vs = append(vs, v)
	}
	u.mu.RUnlock()
	return func() (v T, ok bool) {
		if len(vs) == 0 {
			return
		}
		v, vs = vs[0], vs[1:]
		return v, true
	}
}

func (u *SyncTree[T]) Corrupt() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Corrupt()
}

// View runs f with the read lock held. f may walk nodes but must not keep
// them after it returns nor call back into u.
func (u *SyncTree[T]) View(f func(*AVLTree[T])) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	f(u.t)
}

var (
	_ Tree[int] = (*AVLTree[int])(nil)
	_ Tree[int] = (*SyncTree[int])(nil)
)
