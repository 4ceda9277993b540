package treestate

import "errors"

var (
	ErrUnsupportedSnapshotVersion = errors.New("treestate: unsupported snapshot version")
	ErrTrailingBytes              = errors.New("treestate: trailing bytes after encoded value")
	ErrAnchorMismatch             = errors.New("treestate: frontier does not match the anchored tree")
	ErrInvalidDepth               = errors.New("treestate: tree depth out of range")
	ErrSnapshotMismatch           = errors.New("treestate: snapshot is for a different tree")
)
