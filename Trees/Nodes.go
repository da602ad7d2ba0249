package Trees

// Node of an AVLTree. Each node exclusively owns its children; there is no
// parent pointer. A nil *Node is the absent node and all accessors accept it.
type Node[T any] struct {
	v    T
	l, r *Node[T]
	h    int // height of the subtree rooted here, 1 for a leaf.
}

// Value stored at the node. The zero value of T for nil.
func (u *Node[T]) Value() (v T) {
	if u != nil {
		v = u.v
	}
	return
}

// Left child or nil.
func (u *Node[T]) Left() *Node[T] {
	if u == nil {
		return nil
	}
	return u.l
}

// Right child or nil.
func (u *Node[T]) Right() *Node[T] {
	if u == nil {
		return nil
	}
	return u.r
}

// Height of the subtree rooted at u, 0 for nil.
func (u *Node[T]) Height() int {
	return height(u)
}

// BalanceFactor is height(left)-height(right). Positive means left heavy.
func (u *Node[T]) BalanceFactor() int {
	return balanceFactor(u)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.h
}

func balanceFactor[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.l) - height(n.r)
}

// updateHeight recomputes n.h from the cached heights of its children, so
// children must already be correct.
func updateHeight[T any](n *Node[T]) {
	if n != nil {
		n.h = 1 + max(height(n.l), height(n.r))
	}
}

// rotateRight promotes y.l and returns it as the new subtree root. y.l must
// not be nil. The caller reattaches the result.
// Time: O(1); Space: O(1)
func rotateRight[T any](y *Node[T]) *Node[T] {
	x := y.l
	y.l = x.r
	x.r = y
	updateHeight(y)
	updateHeight(x)
	return x
}

// rotateLeft is the mirror of rotateRight. x.r must not be nil.
// Time: O(1); Space: O(1)
func rotateLeft[T any](x *Node[T]) *Node[T] {
	y := x.r
	x.r = y.l
	y.l = x
	updateHeight(x)
	updateHeight(y)
	return y
}

// CountNodes in the subtree rooted at n by full traversal. Implemented recursively.
// Time: O(n); Space: O(height)
func CountNodes[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + CountNodes(n.l) + CountNodes(n.r)
}
