package Trees

import (
	"math"
	"testing"
)

func intLess(a, b int) bool { return a < b }

// checkTreap verifies the search-tree order over the values and the max-heap
// order over the priorities on every node.
func checkTreap[T, P any](t *testing.T, u *Treap[T, P]) {
	t.Helper()
	count := uint(0)
	var walk func(*treapNode[T, P])
	walk = func(n *treapNode[T, P]) {
		if n == nil {
			return
		}
		count++
		if n.l != nil {
			if u.ltVal(n.v, n.l.v) {
				t.Error("left child compares greater than its parent")
			}
			if u.ltPri(n.p, n.l.p) {
				t.Error("left child has a higher priority than its parent")
			}
		}
		if n.r != nil {
			if u.ltVal(n.r.v, n.v) {
				t.Error("right child compares less than its parent")
			}
			if u.ltPri(n.p, n.r.p) {
				t.Error("right child has a higher priority than its parent")
			}
		}
		walk(n.l)
		walk(n.r)
	}
	walk(u.root)
	if count != u.Size() {
		t.Errorf("treap size is %d, want %d", u.Size(), count)
	}
}

func TestTreap_Insert(t *testing.T) {
	treap := NewTreap[int, int](intLess, intLess)
	for i := 0; i < 5000; i++ {
		treap.Insert(rg.Intn(10000), rg.Int())
	}
	checkTreap(t, treap)
	//expected depth under random priorities is ~3*log2(n); 60 is far outside
	//any plausible run with this seed
	if d := treap.Depth(); d > 60 {
		t.Errorf("treap depth is %d, want a logarithmic one", d)
	}
	t.Logf("depth: %d, size: %d.\n", treap.Depth(), treap.Size())
}

func TestTreap_SortedInsert(t *testing.T) {
	treap := NewTreap[int, int](intLess, intLess)
	const n = 5000
	for v := 0; v < n; v++ {
		treap.Insert(v, rg.Int())
	}
	checkTreap(t, treap)
	//random priorities must keep sorted input from degenerating
	if d := treap.Depth(); float64(d) > 6*math.Log2(n) {
		t.Errorf("treap depth on sorted input is %d", d)
	}
}

func TestTreap_Shape(t *testing.T) {
	treap := NewTreap[int, int](intLess, intLess)
	treap.Insert(2, 10)
	treap.Insert(1, 5)
	treap.Insert(3, 5)
	if treap.Depth() != 2 {
		t.Errorf("treap depth is %d, want 2", treap.Depth())
	}
	if treap.Width() != 2 {
		t.Errorf("treap width is %d, want 2", treap.Width())
	}
	if treap.root.v != 2 {
		t.Errorf("treap root is %d, want the highest priority value 2", treap.root.v)
	}
}

func TestTreap_RootSplit(t *testing.T) {
	treap := NewTreap[int, int](intLess, intLess)
	for _, v := range []int{1, 2, 4, 5} {
		treap.Insert(v, 1)
	}
	//beats the root's priority: the whole tree splits around it
	treap.Insert(3, 100)
	if treap.root.v != 3 {
		t.Fatalf("treap root is %d, want 3", treap.root.v)
	}
	checkTreap(t, treap)
	if treap.Size() != 5 {
		t.Errorf("treap size is %d, want 5", treap.Size())
	}
}

func TestTreap_Empty(t *testing.T) {
	treap := NewTreap[int, int](intLess, intLess)
	if treap.Depth() != 0 || treap.Width() != 0 || treap.Size() != 0 {
		t.Error("empty treap reports nonzero measurements")
	}
	treap.Insert(1, 1)
	treap.Clear()
	if treap.Depth() != 0 || treap.Size() != 0 {
		t.Error("cleared treap reports nonzero measurements")
	}
}
