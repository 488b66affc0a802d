package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a height-balanced binary search tree that also maintains order
// statistics: every node carries the size of its subtree, so the element at
// any in-order position is reachable in O(D) without iterating, D being the
// tree height. The height invariant (children of a node differ in height by
// at most 1) bounds D by roughly 1.44*log2(n), so insertion, removal and
// selection are all O(log n).
// The order over T is a strict less-than predicate supplied once at
// construction; it must be pure and total, and mutating its behavior during
// the lifetime of a tree corrupts the order. Values comparing equal are kept
// as distinct entries (see OrderStatistic.Insert).
// The tree isn't thread-safe: a call assumes exclusive access for its whole
// duration.
type AVLTree[T any] struct {
	root *avlNode[T]
	lt   func(T, T) bool
	sz   uint
}

// NewAVL returns an empty AVLTree ordered by lessThan.
// AVLTree shouldn't be created directly using struct literal.
func NewAVL[T any](lessThan func(T, T) bool) *AVLTree[T] {
	return &AVLTree[T]{lt: lessThan}
}

// NewOrderedAVL is the NewAVL equivalence for types carrying a built-in
// order.
func NewOrderedAVL[T constraints.Ordered]() *AVLTree[T] {
	return NewAVL[T](func(a, b T) bool { return a < b })
}

// Size returns the number of elements in the tree.
// Time: O(1)
func (u *AVLTree[T]) Size() uint {
	return u.sz
}

// Height of the tree: 0 when empty, 1 for a single element.
// Time: O(1)
func (u *AVLTree[T]) Height() uint {
	return uint(u.root.height())
}

// insert v into the subtree *np recursively, accumulating into rank the
// number of elements that precede v in the in-order sequence. Every node on
// the descent path is rebalanced on unwind.
func (u *AVLTree[T]) insert(np **avlNode[T], v T, rank *uint) {
	if cur := *np; cur == nil {
		*np = &avlNode[T]{v: v, h: 1}
	} else {
		if u.lt(v, cur.v) {
			u.insert(&cur.l, v, rank)
		} else {
			//cur and everything left of it precede v
			*rank += cur.l.count() + 1
			u.insert(&cur.r, v, rank)
		}
		rebalance(np)
	}
}

// Insert [OrderStatistic.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) uint {
	var rank uint
	u.insert(&u.root, v, &rank)
	u.sz++
	return rank
}

// remove the element comparing equal to key from the subtree *np recursively.
// A node with children is not unlinked: its value is overwritten with the
// closest value pulled out of the taller child (the minimum of the right
// subtree when the right one is at least as tall, the maximum of the left
// subtree otherwise). Taking from the taller side keeps the node's balance
// from degrading, so it usually saves a rotation pass. Each touched ancestor
// is rebalanced on unwind; nothing is rebalanced when key isn't found.
func (u *AVLTree[T]) remove(np **avlNode[T], key T) (removed T, ok bool) {
	cur := *np
	if cur == nil {
		return
	}
	if u.lt(key, cur.v) {
		removed, ok = u.remove(&cur.l, key)
	} else if u.lt(cur.v, key) {
		removed, ok = u.remove(&cur.r, key)
	} else {
		removed, ok = cur.v, true
		if cur.l == nil && cur.r == nil {
			*np = nil
			return
		}
		if cur.r.height() >= cur.l.height() {
			cur.v = popMin(&cur.r)
		} else {
			cur.v = popMax(&cur.l)
		}
	}
	if ok {
		rebalance(np)
	}
	return
}

// Remove [OrderStatistic.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *AVLTree[T]) Remove(key T) (T, bool) {
	v, ok := u.remove(&u.root, key)
	if ok {
		u.sz--
	}
	return v, ok
}

// Select [OrderStatistic.Select]. Pure read, no rebalancing.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Select(rank uint) T {
	if rank >= u.sz {
		panic(RankError{rank, u.sz})
	}
	skipped := uint(0) //elements known to precede the whole current subtree
	for cur := u.root; ; {
		if lc := cur.l.count(); skipped+lc == rank {
			return cur.v
		} else if skipped+lc < rank {
			skipped += lc + 1
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
}

// Clear drops every element. Nodes own their children exclusively and hold no
// back pointers, so releasing the root releases the entire tree.
// Time: O(1)
func (u *AVLTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Width returns the element count of the widest level of the tree.
// Time: O(n); Space: O(width)
func (u *AVLTree[T]) Width() uint {
	return MaxWidth(u.root, func(n *avlNode[T]) (*avlNode[T], *avlNode[T]) {
		return n.l, n.r
	})
}
