package walltype_test

import (
	"testing"

	"github.com/katalvlaran/kruskalmaze/lattice"
	"github.com/katalvlaran/kruskalmaze/walltype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allPresent reports every wall as present, regardless of id.
func allPresent(int) bool { return true }

// TestClassify_AllTruePattern checks that on an all-true bitmap in a 5x5
// grid, every interior wall classifies as 111x111 and every perimeter wall
// classifies as 111x000.
func TestClassify_AllTruePattern(t *testing.T) {
	g := lattice.NewGrid(5, 5)

	for id := 0; id < g.Walls; id++ {
		tag, err := walltype.Classify(g, allPresent, id)
		require.NoError(t, err)

		r, c, err := g.WallCoord(id)
		require.NoError(t, err)
		if isPerimeterWall(g, r, c) {
			assert.Equal(t, walltype.Tag111x000, tag, "perimeter wall at (%d,%d)", r, c)
		} else {
			assert.Equal(t, walltype.Tag111x111, tag, "interior wall at (%d,%d)", r, c)
		}
	}
}

func isPerimeterWall(g *lattice.Grid, r, c int) bool {
	if lattice.IsVertical(r, c) {
		return r == 0 || r == 2*g.Height-2
	}

	return c == 0 || c == 2*g.Width-2
}

// TestClassify_Totality checks that Classify returns a tag (never
// ErrUnmatched) for every wall of every grid from 2x2 to 8x8, under both an
// all-true and an all-false bitmap.
func TestClassify_Totality(t *testing.T) {
	allAbsent := func(int) bool { return false }

	for w := 2; w <= 8; w++ {
		for h := 2; h <= 8; h++ {
			g := lattice.NewGrid(w, h)
			for id := 0; id < g.Walls; id++ {
				_, err := walltype.Classify(g, allPresent, id)
				require.NoError(t, err, "w=%d h=%d id=%d (present)", w, h, id)
				_, err = walltype.Classify(g, allAbsent, id)
				require.NoError(t, err, "w=%d h=%d id=%d (absent)", w, h, id)
			}
		}
	}
}

// TestClassify_Symmetry checks that the raw patterns of the 111x011 orbit
// (111x011, 111x110, 011x111, 110x111) all classify to Tag111x011, by
// constructing a 5x5 grid and forcing an interior wall's neighborhood bits
// directly.
func TestClassify_Symmetry(t *testing.T) {
	g := lattice.NewGrid(5, 5)

	// An interior vertical wall with all six neighbors addressable: pick
	// wall at logical coordinate (2, 3) (row 2 is an even interior row for
	// H=5, col 3 is an odd interior column for W=5).
	wallID, err := g.WallID(2, 3)
	require.NoError(t, err)

	cases := []struct {
		name     string
		presence map[[2]int]bool // coordinates, relative to the wall, set true
		want     walltype.Tag
	}{
		{
			name: "111x011_raw",
			presence: presentSet(g, 2, 3,
				[2]int{1, 2}, [2]int{0, 3}, [2]int{1, 4}, // top = 111
				[2]int{4, 3}, [2]int{3, 4}, // bottom partial: (3,2) absent, (4,3) and (3,4) present = 011
			),
			want: walltype.Tag111x011,
		},
		{
			name: "111x110_reflected",
			presence: presentSet(g, 2, 3,
				[2]int{1, 2}, [2]int{0, 3}, [2]int{1, 4}, // top = 111
				[2]int{3, 2}, [2]int{4, 3}, // bottom = 110
			),
			want: walltype.Tag111x011,
		},
		{
			name: "011x111_swapped",
			presence: presentSet(g, 2, 3,
				[2]int{0, 3}, [2]int{1, 4}, // top = 011
				[2]int{3, 2}, [2]int{4, 3}, [2]int{3, 4}, // bottom = 111
			),
			want: walltype.Tag111x011,
		},
		{
			name: "110x111_swapped_reflected",
			presence: presentSet(g, 2, 3,
				[2]int{1, 2}, [2]int{0, 3}, // top = 110
				[2]int{3, 2}, [2]int{4, 3}, [2]int{3, 4}, // bottom = 111
			),
			want: walltype.Tag111x011,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			present := func(id int) bool {
				r, col, err := g.WallCoord(id)
				require.NoError(t, err)
				return c.presence[[2]int{r, col}]
			}
			tag, err := walltype.Classify(g, present, wallID)
			require.NoError(t, err)
			assert.Equal(t, c.want, tag)
		})
	}
}

func presentSet(g *lattice.Grid, _, _ int, coords ...[2]int) map[[2]int]bool {
	m := make(map[[2]int]bool, len(coords))
	for _, rc := range coords {
		m[[2]int{rc[0], rc[1]}] = true
	}
	_ = g
	return m
}

func TestWallWeights_WeightAndSet(t *testing.T) {
	w := walltype.NewWeights(walltype.WithAll(3), walltype.WithTag(walltype.Tag000x000, 9))
	assert.EqualValues(t, 3, w.Weight(walltype.Tag111x111))
	assert.EqualValues(t, 9, w.Weight(walltype.Tag000x000))
}

func TestWithPreset_Uniform(t *testing.T) {
	w := walltype.NewWeights(walltype.WithPreset(walltype.PresetUniform))
	assert.EqualValues(t, 10, w.Weight(walltype.Tag111x111))
	assert.EqualValues(t, 10, w.Weight(walltype.Tag000x000))
}

func TestWithPreset_SparseIsUniformlyLow(t *testing.T) {
	w := walltype.NewWeights(walltype.WithPreset(walltype.PresetSparse))
	assert.EqualValues(t, 1, w.Weight(walltype.Tag111x111))
	assert.EqualValues(t, 1, w.Weight(walltype.Tag000x000))
}

func TestWithPreset_BraidedFavorsDecoratedPatterns(t *testing.T) {
	w := walltype.NewWeights(walltype.WithPreset(walltype.PresetBraided))
	assert.Greater(t, w.Weight(walltype.Tag111x111), w.Weight(walltype.Tag000x000))
}

func TestWithPreset_TreeFavorsBarePatterns(t *testing.T) {
	w := walltype.NewWeights(walltype.WithPreset(walltype.PresetTree))
	assert.Greater(t, w.Weight(walltype.Tag000x000), w.Weight(walltype.Tag111x111))
}
