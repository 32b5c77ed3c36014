package fenwick

// Index is a Fenwizk-tree-backed prefix-sum index over the logical domain
// [0, n). The zero value is not usable; construct with New.
type Index struct {
	values []uint64 // values[i]: current weight at logical index i
	tree   []uint64 // tree[1..n]: 1-indexed Fenwick tree
	total  uint64   // running sum of all values
	highPw int      // highest power of two ≤ n, precomputed for LowerBound
}

// New returns an Index of length n with every weight initialized to 0.
// Panics if n < 0.
//
// Complexity: O(n) time and space.
func New(n int) *Index {
	if n < 0 {
		panic("fenwick: New: n must be ≥ 0")
	}

	highPw := 1
	for highPw*2 <= n {
		highPw *= 2
	}
	if n == 0 {
		highPw = 0
	}

	return &Index{
		values: make([]uint64, n),
		tree:   make([]uint64, n+1),
		highPw: highPw,
	}
}

// Len reports the logical domain size n.
func (ix *Index) Len() int {
	return len(ix.values)
}

// Total returns Σ weights[i] over the whole domain.
//
// Complexity: O(1).
func (ix *Index) Total() uint64 {
	return ix.total
}

// Get returns the current weight at logical index i.
//
// Complexity: O(1).
func (ix *Index) Get(i int) (uint64, error) {
	if i < 0 || i >= len(ix.values) {
		return 0, ErrIndexOutOfRange
	}

	return ix.values[i], nil
}

// Set assigns weights[i] = v, updating the tree and the running total.
// Rejects v < 0 is impossible at the type level (v is uint64); rejects a
// negative logical value is instead enforced by SetInt64, below, for
// callers that compute deltas in signed arithmetic.
//
// Complexity: O(log n).
func (ix *Index) Set(i int, v uint64) error {
	if i < 0 || i >= len(ix.values) {
		return ErrIndexOutOfRange
	}

	old := ix.values[i]
	ix.values[i] = v

	if v >= old {
		delta := v - old
		ix.total += delta
		for j := i + 1; j < len(ix.tree); j += j & (-j) {
			ix.tree[j] += delta
		}
	} else {
		delta := old - v
		ix.total -= delta
		for j := i + 1; j < len(ix.tree); j += j & (-j) {
			ix.tree[j] -= delta
		}
	}

	return nil
}

// SetInt64 is a convenience wrapper for callers holding a signed value
// (e.g. a classifier weight read from a config map). It rejects v < 0 with
// ErrNegativeWeight rather than wrapping to a huge unsigned value.
//
// Complexity: O(log n).
func (ix *Index) SetInt64(i int, v int64) error {
	if v < 0 {
		return ErrNegativeWeight
	}

	return ix.Set(i, uint64(v))
}

// PrefixSum returns Σ_{j≤i} weights[j].
//
// Complexity: O(log n).
func (ix *Index) PrefixSum(i int) (uint64, error) {
	if i < 0 || i >= len(ix.values) {
		return 0, ErrIndexOutOfRange
	}

	var sum uint64
	for j := i + 1; j > 0; j -= j & (-j) {
		sum += ix.tree[j]
	}

	return sum, nil
}

// LowerBound returns the smallest i with PrefixSum(i) ≥ s, using binary
// lifting over the Fenwick layout: descend from the greatest power of two
// ≤ n, accumulating the running index whenever the candidate subtree's sum
// is strictly less than the remaining target, then subtracting that
// subtree's sum from the target. Requires 1 ≤ s ≤ Total().
//
// Complexity: O(log n).
func (ix *Index) LowerBound(s uint64) (int, error) {
	if s < 1 || s > ix.total {
		return 0, ErrOutOfBudget
	}

	n := len(ix.values)
	pos := 0
	remaining := s
	for pw := ix.highPw; pw > 0; pw >>= 1 {
		next := pos + pw
		if next <= n && ix.tree[next] < remaining {
			pos = next
			remaining -= ix.tree[pos]
		}
	}

	// pos is the 1-indexed boundary with PrefixSum(1..pos) < s; the logical
	// 0-indexed answer is exactly pos (the next 1-indexed slot, pos+1,
	// corresponds to 0-indexed logical index pos).
	return pos, nil
}
