package lattice

import "errors"

// ErrOutOfRange indicates a coordinate/id bijection was called with a value
// outside its declared domain: an id ≥ the relevant count, a coordinate
// outside the lattice bounds, or a coordinate whose parity does not match
// the requested kind (cell vs. wall, vertical vs. horizontal).
var ErrOutOfRange = errors.New("lattice: coordinate or id out of range")
