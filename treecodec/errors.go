package treecodec

import "errors"

var (
	ErrRange                    = errors.New("treecodec: value out of range")
	ErrMalformedFrontier        = errors.New("treecodec: malformed frontier")
	ErrMalformedCommitmentTree  = errors.New("treecodec: malformed commitment tree")
	ErrFragmentPositionMismatch = errors.New("treecodec: auth fragment position mismatch")
	ErrMalformedFragment        = errors.New("treecodec: auth fragment describes no levels")
	ErrUnrecognizedVersion      = errors.New("treecodec: unrecognized serialization version")
	ErrNonCanonicalCompactSize  = errors.New("treecodec: non canonical compact size")
	ErrVectorTooLarge           = errors.New("treecodec: vector length exceeds the maximum")
	ErrInvalidPresenceFlag      = errors.New("treecodec: invalid optional presence flag")
)
