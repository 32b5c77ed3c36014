package dsu

import "errors"

// ErrIndexOutOfRange indicates Find or Union was called with an element
// outside [0, n) for a Forest of size n.
var ErrIndexOutOfRange = errors.New("dsu: index out of range")
