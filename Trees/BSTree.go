package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the BSTree. Owns its children exclusively.
type bstNode[T any] struct {
	v    T
	l, r *bstNode[T]
}

func bstKids[T any](n *bstNode[T]) (*bstNode[T], *bstNode[T]) {
	return n.l, n.r
}

// BSTree is a plain binary search tree with no balancing: the shape, and so
// the depth, depends entirely on the insertion order; sorted input degrades
// it to a linked list. Values comparing equal to an existing element descend
// right and are kept as distinct entries.
type BSTree[T any] struct {
	root *bstNode[T]
	lt   func(T, T) bool
	sz   uint
}

// NewBST returns an empty BSTree ordered by lessThan.
func NewBST[T any](lessThan func(T, T) bool) *BSTree[T] {
	return &BSTree[T]{lt: lessThan}
}

// NewOrderedBST is the NewBST equivalence for types carrying a built-in
// order.
func NewOrderedBST[T constraints.Ordered]() *BSTree[T] {
	return NewBST[T](func(a, b T) bool { return a < b })
}

// Size returns the number of elements in the tree.
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Insert v.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) {
	u.sz++
	if u.root == nil {
		u.root = &bstNode[T]{v: v}
		return
	}
	for cur := u.root; ; {
		if u.lt(v, cur.v) {
			if cur.l == nil {
				cur.l = &bstNode[T]{v: v}
				return
			}
			cur = cur.l
		} else {
			if cur.r == nil {
				cur.r = &bstNode[T]{v: v}
				return
			}
			cur = cur.r
		}
	}
}

// Has element v.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if u.lt(v, cur.v) {
			cur = cur.l
		} else if u.lt(cur.v, v) {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Depth of the tree, measured by a breadth-first level walk: recursing down
// an unbalanced tree could use O(n) stack. 0 when empty.
// Time: O(n); Space: O(width)
func (u *BSTree[T]) Depth() uint {
	return bfsDepth(u.root, bstKids[T])
}

// Width returns the element count of the widest level of the tree.
// Time: O(n); Space: O(width)
func (u *BSTree[T]) Width() uint {
	return MaxWidth(u.root, bstKids[T])
}

// Clear drops every element.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}
