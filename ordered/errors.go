package ordered

import "errors"

// Precondition violations are programming errors, detected via debug
// assertions in assert.True, never returned from a point operation as a
// recoverable outcome. RequireValid logs the violated sentinel, annotated
// with the offending values, and then panics with the sentinel's message
// string; a caller who recovers the panic gets that string, not the error
// value, so errors.Is does not apply to it.
var (
	// ErrInvalidBranchingFactor is annotated onto the panic raised when a
	// BTreeMap is constructed with a branching factor below 3.
	ErrInvalidBranchingFactor = errors.New("ordered: branching factor must be at least 3")

	// ErrInvalidMaxLevel is annotated onto the panic raised when a
	// SkipListMap is constructed with MAX_LEVEL outside [1, 32].
	ErrInvalidMaxLevel = errors.New("ordered: max level must be in [1, 32]")

	// ErrIndexOutOfRange is annotated onto the panic raised when SortedSet's
	// RemoveAt is called with an index outside [0, Count()).
	ErrIndexOutOfRange = errors.New("ordered: index out of range")
)
