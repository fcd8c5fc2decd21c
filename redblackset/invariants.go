package redblackset

import "errors"

// Invariant violations reported by BlackHeight, the whitebox structural
// checker used by this package's property tests. Grounded on
// rsc-omap/llrb.go's checkAll, which walks the tree asserting the same
// shape of properties (there for a left-leaning variant, panicking rather
// than returning an error); this package returns the violation instead so
// a failing property test can report it via testify rather than crash.
var (
	ErrRedRoot           = errors.New("redblackset: root is red")
	ErrRedRedEdge        = errors.New("redblackset: red node has a red child")
	ErrUnevenBlackHeight = errors.New("redblackset: black height differs across paths")
)

// BlackHeight walks every root-to-leaf path and returns the tree's black
// height if the red-black invariants hold (root black, no red-red edges,
// uniform black height), or an error identifying which invariant failed.
func (t *Tree[T]) BlackHeight() (int, error) {
	if t.root != nil && t.root.color != black {
		return 0, ErrRedRoot
	}

	return blackHeight(t.root)
}

func blackHeight[T any](n *node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}

	if n.color == red && (isRed(n.left) || isRed(n.right)) {
		return 0, ErrRedRedEdge
	}

	left, err := blackHeight(n.left)
	if err != nil {
		return 0, err
	}

	right, err := blackHeight(n.right)
	if err != nil {
		return 0, err
	}

	if left != right {
		return 0, ErrUnevenBlackHeight
	}

	if n.color == black {
		return left + 1, nil
	}

	return left, nil
}
