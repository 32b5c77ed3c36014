package walltype

import "errors"

// ErrUnmatched indicates a wall's neighborhood pattern matched no canonical
// tag. Every legitimate interior pattern belongs to exactly one of the 24
// canonical tags, and every perimeter pattern belongs to exactly one of the
// 6 one-sided families, so this is a programming-error signal — bitmap
// corruption or a malformed Grid — never an expected runtime outcome.
var ErrUnmatched = errors.New("walltype: neighborhood matched no canonical tag")
