package Trees

// A node in the AVLTree. sz counts the descendants of the node, the node
// itself excluded. h is the height of the subtree rooted here, a leaf has
// h==1. A node owns its children exclusively; absence is a nil pointer.
type avlNode[T any] struct {
	v    T
	l, r *avlNode[T]
	sz   uint
	h    uint8
}

// height of the subtree rooted at n; safe on nil (empty subtree, 0).
func (n *avlNode[T]) height() uint8 {
	if n == nil {
		return 0
	}
	return n.h
}

// count of elements in the subtree rooted at n, n included; safe on nil.
func (n *avlNode[T]) count() uint {
	if n == nil {
		return 0
	}
	return n.sz + 1
}

// balance factor: right height minus left height. In a valid tree it's in
// {-1,0,1}; ±2 right after a local change, before rebalance runs.
func (n *avlNode[T]) balance() int {
	return int(n.r.height()) - int(n.l.height())
}

// update recomputes the node's metadata from its children. Both children must
// already carry correct metadata.
func (n *avlNode[T]) update() {
	n.h = max(n.l.height(), n.r.height()) + 1
	n.sz = n.l.count() + n.r.count()
}

// rotateLeft performs a left rotation on the subtree *np. np is passed by
// reference in order to relink the new subtree root in the parent. The two
// touched nodes are updated child before parent: after the relink *np is a
// child of its former right child, so it must refresh first.
// Time: O(1); Space: O(1)
func rotateLeft[T any](np **avlNode[T]) {
	n := *np
	rc := n.r
	n.r = rc.l
	rc.l = n
	n.update()
	rc.update()
	*np = rc
}

// rotateRight performs a right rotation on the subtree *np, the mirror image
// of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T any](np **avlNode[T]) {
	n := *np
	lc := n.l
	n.l = lc.r
	lc.r = n
	n.update()
	lc.update()
	*np = lc
}

// rebalance restores the height invariant at *np after the height of one of
// its children may have changed by one. Applies zero, one or two rotations.
// The height must be recomputed before reading the balance factor. When no
// rotation fires the size is still refreshed: a child may have been replaced
// without moving the height out of range.
func rebalance[T any](np **avlNode[T]) {
	cur := *np
	cur.h = max(cur.l.height(), cur.r.height()) + 1
	switch cur.balance() {
	case 2:
		if cur.r.balance() < 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(np)
	case -2:
		if cur.l.balance() > 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(np)
	default:
		cur.sz = cur.l.count() + cur.r.count()
	}
}

// popMin unlinks the smallest element of the subtree *np and returns its
// value, rebalancing the whole descent path on unwind. *np mustn't be empty.
// Recursive.
func popMin[T any](np **avlNode[T]) T {
	cur := *np
	if cur.l == nil {
		*np = cur.r
		return cur.v
	}
	v := popMin(&cur.l)
	rebalance(np)
	return v
}

// popMax is the mirror image of popMin. Recursive.
func popMax[T any](np **avlNode[T]) T {
	cur := *np
	if cur.r == nil {
		*np = cur.l
		return cur.v
	}
	v := popMax(&cur.r)
	rebalance(np)
	return v
}
