package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/kruskalmaze/dsu"
	"github.com/katalvlaran/kruskalmaze/fenwick"
	"github.com/katalvlaran/kruskalmaze/lattice"
	"github.com/katalvlaran/kruskalmaze/walltype"
)

// Build generates a perfect maze over a width x height grid of cells using
// weighted randomized Kruskal: walls are drawn proportionally to their
// current weight (derived from weights via the wall-type classifier),
// accepted iff they connect two previously-disjoint cells, and on
// acceptance the removed wall's neighborhood is rescored before the next
// draw. Returns ErrInvalidDimensions if width < 2 or height < 2.
//
// rng supplies every random draw; a nil rng defaults to one seeded from the
// current time. Two calls with the same seed and weights produce identical
// results — the generator itself performs no other source of randomness.
//
// Complexity: O(E log E) where E = (width-1)*height + (height-1)*width.
func Build(width, height int, weights walltype.WallWeights, rng *rand.Rand) (*Maze, error) {
	if width < 2 || height < 2 {
		return nil, ErrInvalidDimensions
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid := lattice.NewGrid(width, height)
	edges := make([]bool, grid.Walls)
	for i := range edges {
		edges[i] = true
	}
	present := func(wallID int) bool { return edges[wallID] }

	forest := dsu.NewForest(grid.Cells)
	weightIx := fenwick.New(grid.Walls)
	consumed := make([]bool, grid.Walls)

	if err := rescoreAll(grid, present, weightIx, weights); err != nil {
		return nil, err
	}

	for iter := 0; iter < grid.Walls; iter++ {
		total := weightIx.Total()
		if total == 0 {
			break
		}

		s := uint64(rng.Int63n(int64(total))) + 1
		id, err := weightIx.LowerBound(s)
		if err != nil {
			// Unreachable: s is drawn from [1, total()] by construction.
			return nil, err
		}
		if err := weightIx.Set(id, 0); err != nil {
			return nil, err
		}
		consumed[id] = true

		a, b, err := adjacentCells(grid, id)
		if err != nil {
			return nil, err
		}
		merged, err := forest.Union(a, b)
		if err != nil {
			return nil, err
		}
		if !merged {
			continue
		}

		edges[id] = false
		if err := rescoreNeighborhood(grid, present, weightIx, weights, consumed, id); err != nil {
			return nil, err
		}
	}

	return &Maze{grid: grid, edges: edges}, nil
}

// rescoreAll classifies and weighs every wall of grid, used once at Build
// entry.
func rescoreAll(grid *lattice.Grid, present walltype.Present, weightIx *fenwick.Index, weights walltype.WallWeights) error {
	for id := 0; id < grid.Walls; id++ {
		if err := rescoreOne(grid, present, weightIx, weights, id); err != nil {
			return err
		}
	}

	return nil
}

// rescoreNeighborhood reclassifies and reweighs wallID's up to six
// neighbors after wallID's own removal. Neighbors already drawn (consumed)
// keep their zero weight, so no wall is drawn twice.
func rescoreNeighborhood(grid *lattice.Grid, present walltype.Present, weightIx *fenwick.Index, weights walltype.WallWeights, consumed []bool, wallID int) error {
	neighbors, err := walltype.Neighbors(grid, wallID)
	if err != nil {
		return err
	}
	for _, j := range neighbors {
		if consumed[j] {
			continue
		}
		if err := rescoreOne(grid, present, weightIx, weights, j); err != nil {
			return err
		}
	}

	return nil
}

// rescoreOne classifies wall id under the current bitmap and writes its
// configured weight into weightIx, wrapping walltype.ErrUnmatched as
// ErrClassifierUnmatched.
func rescoreOne(grid *lattice.Grid, present walltype.Present, weightIx *fenwick.Index, weights walltype.WallWeights, id int) error {
	tag, err := walltype.Classify(grid, present, id)
	if err != nil {
		if errors.Is(err, walltype.ErrUnmatched) {
			return fmt.Errorf("%w: %w", ErrClassifierUnmatched, err)
		}

		return err
	}

	return weightIx.Set(id, weights.Weight(tag))
}

// adjacentCells returns the two cell ids the wall at id separates,
// rotated by the wall's orientation.
func adjacentCells(grid *lattice.Grid, id int) (a, b int, err error) {
	r, c, err := grid.WallCoord(id)
	if err != nil {
		return 0, 0, err
	}

	if lattice.IsVertical(r, c) {
		a, err = grid.CellID(r, c-1)
		if err != nil {
			return 0, 0, err
		}
		b, err = grid.CellID(r, c+1)
		if err != nil {
			return 0, 0, err
		}

		return a, b, nil
	}

	a, err = grid.CellID(r-1, c)
	if err != nil {
		return 0, 0, err
	}
	b, err = grid.CellID(r+1, c)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}
