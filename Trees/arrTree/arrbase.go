package arrTree

import (
	"golang.org/x/exp/constraints"
	"math/bits"
)

// A node in the Tree, addressed by its index in ifs.
// The zero value is meaningful: ifs[0] is the absent node, its children
// loop back to 0 and its height is 0.
type info[S constraints.Unsigned] struct {
	l, r, h S
}

type base[S constraints.Unsigned] struct {
	root S
	ifs  []info[S] //0 is loopback nil. all index is based on ifs
}

func (u *base[S]) updateHeight(i S) {
	if i != 0 {
		n := &u.ifs[i]
		n.h = 1 + max(u.ifs[n.l].h, u.ifs[n.r].h)
	}
}

func (u *base[S]) balanceFactor(i S) int {
	n := u.ifs[i]
	return int(u.ifs[n.l].h) - int(u.ifs[n.r].h)
}

// rotateRight promotes the left child of *ni and stores its index in *ni.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateRight(ni *S) {
	y := *ni
	x := u.ifs[y].l
	u.ifs[y].l = u.ifs[x].r
	u.ifs[x].r = y
	u.updateHeight(y)
	u.updateHeight(x)
	*ni = x
}

// rotateLeft promotes the right child of *ni and stores its index in *ni.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateLeft(ni *S) {
	x := *ni
	y := u.ifs[x].r
	u.ifs[x].r = u.ifs[y].l
	u.ifs[y].l = x
	u.updateHeight(x)
	u.updateHeight(y)
	*ni = y
}

// inOrder calls f on every index in order with an explicit stack. st is
// reused as the buffer and returned for the next call.
func (u *base[S]) inOrder(f func(S) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(curI) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// Root index, 0 when the tree is empty.
func (u *base[S]) Root() S {
	return u.root
}

// Left child index of i, 0 if absent.
func (u *base[S]) Left(i S) S {
	return u.ifs[i].l
}

// Right child index of i, 0 if absent.
func (u *base[S]) Right(i S) S {
	return u.ifs[i].r
}

// NodeHeight of the subtree at i, 0 for index 0.
func (u *base[S]) NodeHeight(i S) S {
	return u.ifs[i].h
}

// BalanceFactor of the node at i, 0 for index 0.
func (u *base[S]) BalanceFactor(i S) int {
	return u.balanceFactor(i)
}

// Height of the tree.
func (u *base[S]) Height() S {
	return u.ifs[u.root].h
}

// Size of the tree. Nodes are never freed so every slot but ifs[0] is live.
func (u *base[S]) Size() S {
	return S(len(u.ifs) - 1)
}

func (u *base[S]) countNodes(i S) S {
	if i == 0 {
		return 0
	}
	return 1 + u.countNodes(u.ifs[i].l) + u.countNodes(u.ifs[i].r)
}

// CountNodes by traversal, implemented recursively. Always equals Size.
func (u *base[S]) CountNodes() S {
	return u.countNodes(u.root)
}

func (u *base[S]) clrIfs() {
	u.ifs = u.ifs[:1]
	u.root = 0
}

// buildIfs lays out a tree for n sorted values where node i holds value i-1,
// splitting every range at its midpoint. A range of m values has height bits.Len(m).
func buildIfs[S constraints.Unsigned](n S, ifs []info[S], st [][3]S) (root S, _ []info[S]) {
	ifs = append(ifs[:0], make([]info[S], int(n)+1)...)
	if n == 0 {
		return 0, ifs
	}
	root = 1 + (n-1)/2
	for st = append(st[:0], [3]S{1, n, root}); len(st) > 0; { //[left,right,mid]
		top := st[len(st)-1]
		st = st[:len(st)-1]
		ifs[top[2]].h = S(bits.Len64(uint64(top[1] - top[0] + 1)))
		if top[0] < top[2] {
			nr := top[2] - 1
			ifs[top[2]].l = top[0] + (nr-top[0])/2
			st = append(st, [3]S{top[0], nr, ifs[top[2]].l})
		}
		if top[2] < top[1] {
			nl := top[2] + 1
			ifs[top[2]].r = nl + (top[1]-nl)/2
			st = append(st, [3]S{nl, top[1], ifs[top[2]].r})
		}
	}
	return root, ifs
}
