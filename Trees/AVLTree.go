package Trees

import (
	"cmp"

	"github.com/g-m-twostay/go-avl/Queues"
)

// AVLTree keeps every node's subtrees within one level of height of each other.
// The zero value is not usable, create trees with New or NewFunc.
// An AVLTree is not safe for concurrent use, see SyncTree.
type AVLTree[T any] struct {
	root *Node[T]
	cmp  func(a, b T) int
	size int
}

// New tree ordered by cmp.Compare.
func New[T cmp.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{cmp: cmp.Compare[T]}
}

// NewFunc creates a tree for any T ordered by c. c(a, b) must return a negative
// number when a<b, a positive number when a>b, and 0 when they are equal, and
// must describe a strict weak ordering.
func NewFunc[T any](c func(a, b T) int) *AVLTree[T] {
	return &AVLTree[T]{cmp: c}
}

// Root node or nil when the tree is empty.
func (u *AVLTree[T]) Root() *Node[T] {
	return u.root
}

// BalanceFactor of n, 0 for nil.
func (u *AVLTree[T]) BalanceFactor(n *Node[T]) int {
	return balanceFactor(n)
}

// insert v under n and return the new root of that subtree. Implemented recursively.
func (u *AVLTree[T]) insert(n *Node[T], v T) (*Node[T], bool) {
	if n == nil {
		return &Node[T]{v: v, h: 1}, true
	}
	var added bool
	if c := u.cmp(v, n.v); c < 0 {
		n.l, added = u.insert(n.l, v)
	} else if c > 0 {
		n.r, added = u.insert(n.r, v)
	} else {
		return n, false
	}
	if !added {
		return n, false
	}
	updateHeight(n)
	// a single insertion leaves at most one unbalanced shape, so the inserted
	// value against the heavy child decides between single and double rotation.
	switch bf := balanceFactor(n); {
	case bf > 1 && u.cmp(v, n.l.v) < 0:
		return rotateRight(n), true
	case bf < -1 && u.cmp(v, n.r.v) > 0:
		return rotateLeft(n), true
	case bf > 1 && u.cmp(v, n.l.v) > 0:
		n.l = rotateLeft(n.l)
		return rotateRight(n), true
	case bf < -1 && u.cmp(v, n.r.v) < 0:
		n.r = rotateRight(n.r)
		return rotateLeft(n), true
	}
	return n, true
}

// Insert v and rebalance. Duplicates are ignored and return false.
// Time: O(log n); Space: O(log n)
func (u *AVLTree[T]) Insert(v T) bool {
	var added bool
	if u.root, added = u.insert(u.root, v); added {
		u.size++
	}
	return added
}

// Clear releases all the nodes.
func (u *AVLTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// Size is the number of distinct values inserted since the last Clear.
// Time: O(1)
func (u *AVLTree[T]) Size() int {
	return u.size
}

// CountNodes by traversal. Always equals Size.
// Time: O(n)
func (u *AVLTree[T]) CountNodes() int {
	return CountNodes(u.root)
}

// Height of the root.
// Time: O(1)
func (u *AVLTree[T]) Height() int {
	return height(u.root)
}

func (u *AVLTree[T]) find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

func (u *AVLTree[T]) Has(v T) bool {
	return u.find(v) != nil
}

func (u *AVLTree[T]) Minimum() (v T, ok bool) {
	cur := u.root
	if cur == nil {
		return
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

func (u *AVLTree[T]) Maximum() (v T, ok bool) {
	cur := u.root
	if cur == nil {
		return
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

func (u *AVLTree[T]) InOrder() func() (T, bool) {
	st := make([]*Node[T], 0, height(u.root))
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (v T, ok bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for next := cur.r; next != nil; next = next.l {
			st = append(st, next)
		}
		return cur.v, true
	}
}

// Levels groups the nodes by depth, from the root down, each level ordered
// left to right. Empty tree gives nil.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) Levels() [][]*Node[T] {
	if u.root == nil {
		return nil
	}
	lvs := make([][]*Node[T], 0, u.root.h)
	q := Queues.MakeArrayQueue[*Node[T]](uint(u.size/2 + 1))
	q.Push(u.root)
	for !q.Empty() {
		lv := make([]*Node[T], 0, q.Size())
		for n := q.Size(); n > 0; n-- {
			cur, _ := q.Pop()
			lv = append(lv, cur)
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
		lvs = append(lvs, lv)
	}
	return lvs
}

// corrupt checks the subtree at n with every value strictly between lo and hi
// (unbounded when the pointer is nil) and returns its recomputed height, or
// -1 if any invariant fails. Implemented recursively.
func (u *AVLTree[T]) corrupt(n *Node[T], lo, hi *T) int {
	if n == nil {
		return 0
	}
	if (lo != nil && u.cmp(*lo, n.v) >= 0) || (hi != nil && u.cmp(n.v, *hi) >= 0) {
		return -1
	}
	lh := u.corrupt(n.l, lo, &n.v)
	if lh < 0 {
		return -1
	}
	rh := u.corrupt(n.r, &n.v, hi)
	if rh < 0 || lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	if h := 1 + max(lh, rh); h == n.h {
		return h
	}
	return -1
}

func (u *AVLTree[T]) Corrupt() bool {
	return u.corrupt(u.root, nil, nil) < 0 || CountNodes(u.root) != u.size
}
