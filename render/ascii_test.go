package render_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/kruskalmaze/maze"
	"github.com/katalvlaran/kruskalmaze/render"
	"github.com/katalvlaran/kruskalmaze/walltype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCII_Dimensions(t *testing.T) {
	weights := walltype.NewWeights(walltype.WithPreset(walltype.PresetUniform))
	m, err := maze.Build(4, 3, weights, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	out := render.ASCII(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2*3+1)
	for _, line := range lines {
		assert.Len(t, line, 2*4+1)
	}
}

func TestASCII_CornersAndBoundary(t *testing.T) {
	weights := walltype.NewWeights(walltype.WithAll(1))
	m, err := maze.Build(2, 2, weights, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	out := render.ASCII(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, byte('+'), lines[0][0])
	assert.Equal(t, byte('-'), lines[0][1])
	assert.Equal(t, byte('|'), lines[1][0])
}
