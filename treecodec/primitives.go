package treecodec

import (
	"fmt"
	"io"
	"math"

	"github.com/forestrie/go-notetree/tree"
)

// WriteUint64Count writes a native sized count as a u64.
func WriteUint64Count(w io.Writer, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrRange, n)
	}
	return writeUint64(w, uint64(n))
}

// ReadUint64Count reads a u64 that must fit the native int.
func ReadUint64Count(r io.Reader) (int, error) {
	v, err := readUint64(r)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt {
		return 0, fmt.Errorf("%w: count %d does not fit int", ErrRange, v)
	}
	return int(v), nil
}

// readNative reads a u64 that must fit the native uint.
func readNative(r io.Reader) (uint64, error) {
	v, err := readUint64(r)
	if err != nil {
		return 0, err
	}
	if uint64(math.MaxUint) < v {
		return 0, fmt.Errorf("%w: %d does not fit uint", ErrRange, v)
	}
	return v, nil
}

func WritePosition(w io.Writer, p tree.Position) error {
	return writeUint64(w, uint64(p))
}

func ReadPosition(r io.Reader) (tree.Position, error) {
	v, err := readNative(r)
	if err != nil {
		return 0, err
	}
	return tree.Position(v), nil
}

func WriteLevel(w io.Writer, l tree.Level) error {
	return writeByte(w, byte(l))
}

// ReadLevel reads a level byte, rejecting levels above tree.MaxLevel.
func ReadLevel(r io.Reader) (tree.Level, error) {
	b, err := readByte(r)
	if err != nil {
		return 0, err
	}
	if tree.Level(b) > tree.MaxLevel {
		return 0, fmt.Errorf("%w: level %d > %d", ErrRange, b, tree.MaxLevel)
	}
	return tree.Level(b), nil
}

func WriteAddress(w io.Writer, addr tree.Address) error {
	if err := WriteLevel(w, addr.Level); err != nil {
		return err
	}
	return writeUint64(w, addr.Index)
}

func ReadAddress(r io.Reader) (tree.Address, error) {
	level, err := ReadLevel(r)
	if err != nil {
		return tree.Address{}, err
	}
	index, err := readNative(r)
	if err != nil {
		return tree.Address{}, err
	}
	return tree.Address{Level: level, Index: index}, nil
}
