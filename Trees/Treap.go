package Trees

// A node in the Treap. Owns its children exclusively.
type treapNode[T, P any] struct {
	v    T
	p    P
	l, r *treapNode[T, P]
}

func treapKids[T, P any](n *treapNode[T, P]) (*treapNode[T, P], *treapNode[T, P]) {
	return n.l, n.r
}

// Treap is a cartesian tree: a binary search tree over the values that is at
// the same time a max-heap over the priorities supplied with each insertion.
// With priorities drawn at random the expected depth is O(log n) regardless
// of the value insertion order. Values comparing equal descend left.
type Treap[T, P any] struct {
	root  *treapNode[T, P]
	ltVal func(T, T) bool
	ltPri func(P, P) bool
	sz    uint
}

// NewTreap returns an empty Treap with lessVal ordering the values and
// lessPri ordering the priorities.
func NewTreap[T, P any](lessVal func(T, T) bool, lessPri func(P, P) bool) *Treap[T, P] {
	return &Treap[T, P]{ltVal: lessVal, ltPri: lessPri}
}

// Size returns the number of elements in the treap.
func (u *Treap[T, P]) Size() uint {
	return u.sz
}

// split cuts the subtree t by key: the first returned subtree holds the
// values less than key, the second the rest. In-order sequence is preserved
// across the cut. Recursive.
func (u *Treap[T, P]) split(t *treapNode[T, P], key T) (*treapNode[T, P], *treapNode[T, P]) {
	if t == nil {
		return nil, nil
	}
	if u.ltVal(t.v, key) {
		a, b := u.split(t.r, key)
		t.r = a
		return t, b
	}
	a, b := u.split(t.l, key)
	t.l = b
	return a, t
}

// Insert v with priority p. Descends like a binary search tree while the
// resident priorities dominate p; at the first node whose priority loses to
// p, that subtree is split by v and v becomes its root. Iterative descent,
// recursive split.
// Time: expected O(log n) under random priorities
func (u *Treap[T, P]) Insert(v T, p P) {
	u.sz++
	if u.root == nil || u.ltPri(u.root.p, p) {
		l, r := u.split(u.root, v)
		u.root = &treapNode[T, P]{v: v, p: p, l: l, r: r}
		return
	}
	for cur := u.root; ; {
		if u.ltVal(cur.v, v) {
			if cur.r == nil {
				cur.r = &treapNode[T, P]{v: v, p: p}
				return
			}
			if u.ltPri(cur.r.p, p) {
				l, r := u.split(cur.r, v)
				cur.r = &treapNode[T, P]{v: v, p: p, l: l, r: r}
				return
			}
			cur = cur.r
		} else {
			if cur.l == nil {
				cur.l = &treapNode[T, P]{v: v, p: p}
				return
			}
			if u.ltPri(cur.l.p, p) {
				l, r := u.split(cur.l, v)
				cur.l = &treapNode[T, P]{v: v, p: p, l: l, r: r}
				return
			}
			cur = cur.l
		}
	}
}

// Depth of the treap. Recursive: the expected depth is logarithmic, so the
// walk itself stays shallow.
func (u *Treap[T, P]) Depth() uint {
	return treapDepth(u.root)
}

func treapDepth[T, P any](n *treapNode[T, P]) uint {
	if n == nil {
		return 0
	}
	return max(treapDepth(n.l), treapDepth(n.r)) + 1
}

// Width returns the element count of the widest level of the treap.
// Time: O(n); Space: O(width)
func (u *Treap[T, P]) Width() uint {
	return MaxWidth(u.root, treapKids[T, P])
}

// Clear drops every element.
func (u *Treap[T, P]) Clear() {
	u.root, u.sz = nil, 0
}
