package Trees

import (
	"testing"
)

func TestBST_Insert(t *testing.T) {
	tree := NewOrderedBST[int]()
	content := make(map[int]struct{})
	for i := 0; i < 10000; i++ {
		v := rg.Intn(20000)
		tree.Insert(v)
		content[v] = struct{}{}
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if tree.Has(-1) {
		t.Error("tree has a key that was never inserted")
	}
	t.Logf("depth: %d, size: %d.\n", tree.Depth(), tree.Size())
}

func TestBST_Degenerate(t *testing.T) {
	tree := NewOrderedBST[int]()
	for v := 0; v < 100; v++ {
		tree.Insert(v)
	}
	//sorted input chains every node off the right child
	if tree.Depth() != 100 {
		t.Errorf("tree depth is %d, want 100", tree.Depth())
	}
	if tree.Width() != 1 {
		t.Errorf("tree width is %d, want 1", tree.Width())
	}
}

func TestBST_Shape(t *testing.T) {
	tree := NewOrderedBST[int]()
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(v)
	}
	if tree.Depth() != 3 {
		t.Errorf("tree depth is %d, want 3", tree.Depth())
	}
	if tree.Width() != 4 {
		t.Errorf("tree width is %d, want 4", tree.Width())
	}
	if tree.Size() != 7 {
		t.Errorf("tree size is %d, want 7", tree.Size())
	}
}

func TestBST_Empty(t *testing.T) {
	tree := NewOrderedBST[int]()
	if tree.Depth() != 0 || tree.Width() != 0 || tree.Size() != 0 {
		t.Error("empty tree reports nonzero measurements")
	}
	tree.Insert(1)
	tree.Clear()
	if tree.Depth() != 0 || tree.Size() != 0 {
		t.Error("cleared tree reports nonzero measurements")
	}
}

func TestBST_Duplicates(t *testing.T) {
	tree := NewOrderedBST[int]()
	for i := 0; i < 5; i++ {
		tree.Insert(9)
	}
	if tree.Size() != 5 {
		t.Errorf("tree size is %d, want 5", tree.Size())
	}
	//equal values chain right
	if tree.Depth() != 5 {
		t.Errorf("tree depth is %d, want 5", tree.Depth())
	}
}
