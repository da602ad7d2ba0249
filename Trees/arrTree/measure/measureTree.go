package main

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"os"
	"testing"
	"text/tabwriter"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/g-m-twostay/go-avl/Trees"
	"github.com/g-m-twostay/go-avl/Trees/arrTree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN uint32 = 200000
	bQryN uint32 = bAddN
)
var _R rand.Rand = *rand.New(rand.NewSource(0))

var __r1 bool

func keys() []int {
	all := make([]int, bAddN)
	for i := range all {
		all[i] = _R.Int()
	}
	return all
}

func benchArena(b *testing.B) {
	all := keys()
	b.ResetTimer()
	for range b.N {
		tree := arrTree.New[int, uint32](bAddN)
		buf := make([]uint32, 0, bits.Len32(bAddN)*2)
		for _, v := range all {
			_, buf = tree.BufferedInsert(v, buf[:0])
		}
		for _, v := range all[:bQryN] {
			__r1 = tree.Has(v)
		}
	}
}

func benchPointer(b *testing.B) {
	all := keys()
	b.ResetTimer()
	for range b.N {
		tree := Trees.New[int]()
		for _, v := range all {
			tree.Insert(v)
		}
		for _, v := range all[:bQryN] {
			__r1 = tree.Has(v)
		}
	}
}

func benchGods(b *testing.B) {
	all := keys()
	b.ResetTimer()
	for range b.N {
		tree := avltree.NewWithIntComparator()
		for _, v := range all {
			tree.Put(v, nil)
		}
		for _, v := range all[:bQryN] {
			_, __r1 = tree.Get(v)
		}
	}
}

func benchBTree(b *testing.B) {
	all := keys()
	b.ResetTimer()
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, v := range all {
			tree.ReplaceOrInsert(v)
		}
		for _, v := range all[:bQryN] {
			__r1 = tree.Has(v)
		}
	}
}

func benchLLRB(b *testing.B) {
	all := keys()
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, v := range all {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
		for _, v := range all[:bQryN] {
			__r1 = tree.Has(llrb.Int(v))
		}
	}
}

// theoretical worst case height of an AVL tree with n nodes.
func avlBound(n uint32) float64 {
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}

func main() {
	testing.Init()
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "tree\tms/op\tallocs/op\n")
	for _, c := range []struct {
		name string
		f    func(*testing.B)
	}{
		{"arrTree.AVLTree", benchArena},
		{"Trees.AVLTree", benchPointer},
		{"gods avltree", benchGods},
		{"google btree", benchBTree},
		{"GoLLRB", benchLLRB},
	} {
		br := testing.Benchmark(c.f)
		fmt.Fprintf(w, "%s\t%.2f\t%d\n", c.name, float64(br.NsPerOp())/1e6, br.AllocsPerOp())
	}
	w.Flush()

	tree := arrTree.New[int, uint32](bAddN)
	for v := range bAddN {
		tree.Insert(int(v))
	}
	fmt.Printf("ascending %d: height %d, bound %.2f\n", bAddN, tree.Height(), avlBound(bAddN))
}
