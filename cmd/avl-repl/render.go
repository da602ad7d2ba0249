package main

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-avl/Trees"
)

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// printTree draws the tree sideways, right subtree on top, each node followed
// by its balance factor.
func printTree(w io.Writer, t *Trees.AVLTree[int]) {
	if t.Root() == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	printNode(w, t, t.Root(), "", root)
}

func printNode(w io.Writer, t *Trees.AVLTree[int], n *Trees.Node[int], prefix string, br branch) {
	if r := n.Right(); r != nil {
		p := "       "
		if br == left {
			p = "|      "
		}
		printNode(w, t, r, prefix+p, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%d [%+d]\n", n.Value(), t.BalanceFactor(n))
	if l := n.Left(); l != nil {
		p := "       "
		if br == right {
			p = "|      "
		}
		printNode(w, t, l, prefix+p, left)
	}
}
