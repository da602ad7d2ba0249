package arrTree

import (
	"cmp"
	"golang.org/x/exp/constraints"
	"math/bits"
)

// AVLTree stores its nodes in an index addressed arena instead of linking
// pointers. Node i holds value vs[i-1]; index 0 is the absent node.
// S bounds the number of nodes; Insert panics with CapacityError beyond it.
type AVLTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[S]
	vs []T
}

// New tree with room for hint values before growing.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *AVLTree[T, S] {
	return &AVLTree[T, S]{base[S]{ifs: make([]info[S], 1, int(hint)+1)}, make([]T, 0, hint)}
}

// From builds a perfectly balanced tree from vs, which must be strictly ascending.
// The slice is handed to the tree and mustn't be modified by the caller later.
// If safe==true the order is checked and a violation panics with InvalidSliceError;
// otherwise an unsorted slice silently gives a corrupt tree.
// Time: O(n).
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, safe bool) *AVLTree[T, S] {
	if uint64(len(vs)) > uint64(^S(0)) {
		panic(CapacityError{uint64(len(vs))})
	}
	if safe {
		for i := 1; i < len(vs); i++ {
			if !(vs[i-1] < vs[i]) {
				panic(InvalidSliceError[T]{i, vs[i-1], vs[i]})
			}
		}
	}
	root, ifs := buildIfs(S(len(vs)), nil, make([][3]S, 0, bits.Len(uint(len(vs)))))
	return &AVLTree[T, S]{base[S]{root, ifs}, vs}
}

// Value at node i. i must be a live index, not 0.
func (u *AVLTree[T, S]) Value(i S) T {
	return u.vs[i-1]
}

func (u *AVLTree[T, S]) rebalance(ni *S, v T) {
	n := *ni
	switch bf := u.balanceFactor(n); {
	case bf > 1 && v < u.vs[u.ifs[n].l-1]:
		u.rotateRight(ni)
	case bf < -1 && v > u.vs[u.ifs[n].r-1]:
		u.rotateLeft(ni)
	case bf > 1 && v > u.vs[u.ifs[n].l-1]:
		u.rotateLeft(&u.ifs[n].l)
		u.rotateRight(ni)
	case bf < -1 && v < u.vs[u.ifs[n].r-1]:
		u.rotateRight(&u.ifs[n].r)
		u.rotateLeft(ni)
	}
}

// Insert v and rebalance. Duplicates are ignored and return false.
func (u *AVLTree[T, S]) Insert(v T) bool {
	a, _ := u.BufferedInsert(v, nil)
	return a
}

// BufferedInsert is Insert with st as the path buffer, returned for reuse.
// The path is walked down iteratively, then every ancestor from the new leaf up
// relinks its child, refreshes its height and rebalances, the same sequence as
// unwinding a recursive insert.
// Time: O(log n); Space: O(log n)
func (u *AVLTree[T, S]) BufferedInsert(v T, st []S) (bool, []S) {
	for curI := u.root; curI != 0; {
		st = append(st, curI)
		if v < u.vs[curI-1] {
			curI = u.ifs[curI].l
		} else if v > u.vs[curI-1] {
			curI = u.ifs[curI].r
		} else {
			return false, st
		}
	}
	prev := S(len(u.ifs))
	if prev == 0 || uint64(len(u.ifs)) > uint64(^S(0)) {
		panic(CapacityError{uint64(len(u.ifs))})
	}
	u.ifs = append(u.ifs, info[S]{0, 0, 1})
	u.vs = append(u.vs, v)
	for i := len(st) - 1; i > -1; i-- {
		index := st[i]
		if v < u.vs[index-1] {
			u.ifs[index].l = prev
		} else {
			u.ifs[index].r = prev
		}
		u.updateHeight(index)
		u.rebalance(&index, v)
		prev = index
	}
	u.root = prev
	return true, st
}

// Clear the tree, also zeroes the underlying value array if reset is true so
// values referencing memory can be collected. O(1) if reset==false.
// Doesn't allocate new arrays.
func (u *AVLTree[T, S]) Clear(reset bool) {
	if reset {
		clear(u.vs)
	}
	u.vs = u.vs[:0]
	u.clrIfs()
}

func (u *AVLTree[T, S]) Has(v T) bool {
	for curI := u.root; curI != 0; {
		if v < u.vs[curI-1] {
			curI = u.ifs[curI].l
		} else if v == u.vs[curI-1] {
			return true
		} else {
			curI = u.ifs[curI].r
		}
	}
	return false
}

// InOrder calls f with every value in ascending order until f returns false.
// st is the traversal buffer, returned for reuse; nil is fine.
func (u *AVLTree[T, S]) InOrder(f func(*T) bool, st []S) []S {
	return u.inOrder(func(i S) bool { return f(&u.vs[i-1]) }, st)
}

// corrupt returns the recomputed height of the subtree at i with all values
// strictly between vs[lo-1] and vs[hi-1] (unbounded for 0), or -1 on any
// violation. Implemented recursively.
func (u *AVLTree[T, S]) corrupt(i, lo, hi S) int {
	if i == 0 {
		return 0
	}
	v := u.vs[i-1]
	if (lo != 0 && !(u.vs[lo-1] < v)) || (hi != 0 && !(v < u.vs[hi-1])) {
		return -1
	}
	lh := u.corrupt(u.ifs[i].l, lo, i)
	rh := u.corrupt(u.ifs[i].r, i, hi)
	if lh < 0 || rh < 0 || lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	if h := 1 + max(lh, rh); h == int(u.ifs[i].h) {
		return h
	}
	return -1
}

// Corrupt reports whether ordering, cached heights or the balance condition
// are broken anywhere.
func (u *AVLTree[T, S]) Corrupt() bool {
	return u.corrupt(u.root, 0, 0) < 0 || u.ifs[0] != info[S]{} || len(u.vs) != len(u.ifs)-1
}
