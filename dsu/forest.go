package dsu

// Forest is a disjoint-set forest over the dense integer universe [0, n).
// The zero value is not usable; construct with NewForest.
type Forest struct {
	parent []int
	rank   []uint8
}

// NewForest returns a Forest over n elements, each initially its own
// singleton set. Panics if n < 0 — a negative universe size is always a
// caller bug, not a runtime condition to recover from.
//
// Complexity: O(n) time and space.
func NewForest(n int) *Forest {
	if n < 0 {
		panic("dsu: NewForest: n must be ≥ 0")
	}

	f := &Forest{
		parent: make([]int, n),
		rank:   make([]uint8, n),
	}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f
}

// Len reports the number of elements in the forest.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Find returns the representative of x's set, halving the path walked:
// every visited node is re-pointed at its grandparent, so later Find calls
// on x (and the nodes along the way) walk shorter paths.
//
// Complexity: O(α(n)) amortized.
func (f *Forest) Find(x int) (int, error) {
	if x < 0 || x >= len(f.parent) {
		return 0, ErrIndexOutOfRange
	}

	return f.find(x), nil
}

// find is the panic-free, precondition-checked-by-caller core loop.
func (f *Forest) find(x int) int {
	// Path-halving compression: point each visited node at its grandparent.
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}

	return x
}

// Union merges the sets containing x and y. It returns true iff x and y
// were in distinct sets before the call — the signal a Kruskal-style caller
// needs to know whether accepting the edge (x, y) would close a cycle.
//
// Complexity: O(α(n)) amortized.
func (f *Forest) Union(x, y int) (bool, error) {
	if x < 0 || x >= len(f.parent) || y < 0 || y >= len(f.parent) {
		return false, ErrIndexOutOfRange
	}

	rootX := f.find(x)
	rootY := f.find(y)
	if rootX == rootY {
		// Already connected: union-find reports no merge happened.
		return false, nil
	}

	// Attach the lower-rank root under the higher-rank root.
	switch {
	case f.rank[rootX] < f.rank[rootY]:
		f.parent[rootX] = rootY
	case f.rank[rootX] > f.rank[rootY]:
		f.parent[rootY] = rootX
	default:
		f.parent[rootY] = rootX
		f.rank[rootX]++
	}

	return true, nil
}

// Connected reports whether x and y are currently in the same set.
func (f *Forest) Connected(x, y int) (bool, error) {
	rx, err := f.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := f.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}
