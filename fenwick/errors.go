package fenwick

import "errors"

// ErrIndexOutOfRange indicates Set, Get, or PrefixSum was called with an
// index outside [0, n) for an Index of length n.
var ErrIndexOutOfRange = errors.New("fenwick: index out of range")

// ErrNegativeWeight indicates Set was called with a value < 0. Weights are
// defined over the non-negative integers only.
var ErrNegativeWeight = errors.New("fenwick: weight must be non-negative")

// ErrOutOfBudget indicates LowerBound was called with s outside [1, Total()].
var ErrOutOfBudget = errors.New("fenwick: s out of [1, total()] range")
