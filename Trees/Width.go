package Trees

import (
	"github.com/ndkovalev/go-structs/Queues"
)

// MaxWidth returns the element count of the widest level of the binary tree
// rooted at root, 0 when root is nil. children reports a node's left and
// right child, either of which may be nil. The walk is breadth-first; the
// queue is drained one whole level at a time so the level boundary is known
// without tagging nodes.
// Time: O(n); Space: O(width)
func MaxWidth[N any](root *N, children func(*N) (*N, *N)) uint {
	if root == nil {
		return 0
	}
	width := uint(1)
	q := Queues.MakeRingQueue[*N](16)
	q.Push(root)
	for !q.Empty() {
		width = max(width, q.Size())
		for onLevel := q.Size(); onLevel > 0; onLevel-- {
			cur, _ := q.Pop()
			l, r := children(cur)
			if l != nil {
				q.Push(l)
			}
			if r != nil {
				q.Push(r)
			}
		}
	}
	return width
}

// bfsDepth counts the levels of the binary tree rooted at root the same way
// MaxWidth counts the widest one, without recursing into an unbounded-depth
// tree.
func bfsDepth[N any](root *N, children func(*N) (*N, *N)) uint {
	if root == nil {
		return 0
	}
	depth := uint(0)
	q := Queues.MakeRingQueue[*N](16)
	q.Push(root)
	for !q.Empty() {
		depth++
		for onLevel := q.Size(); onLevel > 0; onLevel-- {
			cur, _ := q.Pop()
			l, r := children(cur)
			if l != nil {
				q.Push(l)
			}
			if r != nil {
				q.Push(r)
			}
		}
	}
	return depth
}
