package walltype

import "github.com/katalvlaran/kruskalmaze/lattice"

// Present reports whether the wall at the given id is currently present.
// Classify depends only on this narrow interface so it never needs to know
// how a caller stores its wall bitmap.
type Present func(wallID int) bool

// Classify returns the canonical Tag of the wall identified by wallID,
// given its lattice and the current state of every wall via present.
// Returns ErrUnmatched only if both of the wall's sides are absent from the
// lattice entirely (unreachable when grid.Width ≥ 2 and grid.Height ≥ 2, the
// precondition package maze enforces before ever calling Classify).
//
// Complexity: O(1) — at most six lattice coordinate conversions plus one
// table lookup.
func Classify(grid *lattice.Grid, present Present, wallID int) (Tag, error) {
	sideA, sideB, err := sideCoords(grid, wallID)
	if err != nil {
		return 0, err
	}

	bitsA, okA := sideBits(grid, present, sideA)
	bitsB, okB := sideBits(grid, present, sideB)

	switch {
	case okA && okB:
		return twoSidedTable[bitsA<<3|bitsB], nil
	case okA:
		return oneSidedTable[bitsA], nil
	case okB:
		return oneSidedTable[bitsB], nil
	default:
		return 0, ErrUnmatched
	}
}

// Neighbors returns the wall ids that share an endpoint with wallID — up to
// six for an interior wall, three on the perimeter. Order is unspecified;
// callers that need to rescore a neighborhood after a removal only need the
// set, not the order.
func Neighbors(grid *lattice.Grid, wallID int) ([]int, error) {
	sideA, sideB, err := sideCoords(grid, wallID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, 6)
	for _, rc := range sideA {
		if id, err := grid.WallID(rc[0], rc[1]); err == nil {
			ids = append(ids, id)
		}
	}
	for _, rc := range sideB {
		if id, err := grid.WallID(rc[0], rc[1]); err == nil {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// sideCoords returns the two sides' neighbor coordinates for wallID: top
// and bottom for a vertical wall, left and right for a horizontal one (the
// horizontal case is the vertical case rotated 90°).
func sideCoords(grid *lattice.Grid, wallID int) (sideA, sideB [3][2]int, err error) {
	r, c, err := grid.WallCoord(wallID)
	if err != nil {
		return sideA, sideB, err
	}

	if lattice.IsVertical(r, c) {
		sideA = [3][2]int{{r - 1, c - 1}, {r - 2, c}, {r - 1, c + 1}}
		sideB = [3][2]int{{r + 1, c - 1}, {r + 2, c}, {r + 1, c + 1}}
	} else {
		sideA = [3][2]int{{r - 1, c - 1}, {r, c - 2}, {r + 1, c - 1}}
		sideB = [3][2]int{{r - 1, c + 1}, {r, c + 2}, {r + 1, c + 1}}
	}

	return sideA, sideB, nil
}

// sideBits looks up the three neighbor wall ids of one side, in order, and
// packs their presence into a 3-bit pattern (first neighbor = most
// significant bit). ok is false iff any of the three coordinates falls
// outside the lattice — the side does not exist at all, which only happens
// together for all three, since the three neighbors of one side share the
// same binding bounds check.
func sideBits(grid *lattice.Grid, present Present, coords [3][2]int) (bits int, ok bool) {
	for _, rc := range coords {
		id, err := grid.WallID(rc[0], rc[1])
		if err != nil {
			return 0, false
		}
		bits <<= 1
		if present(id) {
			bits |= 1
		}
	}

	return bits, true
}
