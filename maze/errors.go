package maze

import "errors"

// ErrInvalidDimensions is returned by Build when width < 2 or height < 2. A
// 1xN or Nx1 lattice has no walls between cells in one axis and cannot form
// a perfect maze.
var ErrInvalidDimensions = errors.New("maze: width and height must each be ≥ 2")

// ErrClassifierUnmatched wraps walltype.ErrUnmatched when it escapes from
// Build. This signals the wall bitmap has been corrupted by a bug
// elsewhere in the generator loop; it must never occur under the
// documented invariants.
var ErrClassifierUnmatched = errors.New("maze: classifier matched no tag (bitmap corrupt)")
