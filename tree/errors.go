package tree

import "errors"

var (
	ErrOmmerCountMismatch    = errors.New("tree: ommer count does not match the frontier position")
	ErrMaxDepthExceeded      = errors.New("tree: frontier position exceeds the tree depth")
	ErrTreeFull              = errors.New("tree: the tree is full")
	ErrMissingFrontier       = errors.New("tree: a bridge requires a frontier")
	ErrBridgeDiscontinuity   = errors.New("tree: bridges are not contiguous")
	ErrBridgePriorMismatch   = errors.New("tree: bridge does not start at the witnessed position")
	ErrWitnessIncomplete     = errors.New("tree: a value required for the witness is not available")
	ErrPositionNotFound      = errors.New("tree: no bridge ends at the requested position")
	ErrInvalidCommitmentTree = errors.New("tree: invalid commitment tree")
	ErrCommitmentTreeTooDeep = errors.New("tree: commitment tree has more parents than the tree depth allows")
)
