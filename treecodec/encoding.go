package treecodec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
)

// MaxCompactSize is the largest element count accepted for a vector.
const MaxCompactSize = 0x02000000

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func readUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func writeUint64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteCompactSize writes n using the shortest of the 1, 3, 5 or 9 byte forms.
func WriteCompactSize(w io.Writer, n uint64) error {
	return wire.WriteVarInt(w, wire.ProtocolVersion, n)
}

// ReadCompactSize reads a CompactSize value. The value must use the shortest
// form that can hold it, and must not exceed MaxCompactSize.
func ReadCompactSize(r io.Reader) (uint64, error) {
	n, err := wire.ReadVarInt(r, wire.ProtocolVersion)
	if err != nil {
		var msgErr *wire.MessageError
		if errors.As(err, &msgErr) {
			return 0, fmt.Errorf("%w: %s", ErrNonCanonicalCompactSize, msgErr.Description)
		}
		return 0, err
	}
	if n > MaxCompactSize {
		return 0, fmt.Errorf("%w: %d > %d", ErrVectorTooLarge, n, MaxCompactSize)
	}
	return n, nil
}

func writeOptional(w io.Writer, present bool, write func(io.Writer) error) error {
	if !present {
		return writeByte(w, 0)
	}
	if err := writeByte(w, 1); err != nil {
		return err
	}
	return write(w)
}

func readOptional[T any](r io.Reader, read func(io.Reader) (T, error)) (v T, ok bool, err error) {
	flag, err := readByte(r)
	if err != nil {
		return v, false, err
	}
	switch flag {
	case 0:
		return v, false, nil
	case 1:
		v, err = read(r)
		if err != nil {
			return v, false, err
		}
		return v, true, nil
	default:
		return v, false, fmt.Errorf("%w: 0x%02x", ErrInvalidPresenceFlag, flag)
	}
}

func writeVector[T any](w io.Writer, items []T, write func(io.Writer, T) error) error {
	if err := WriteCompactSize(w, uint64(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := write(w, item); err != nil {
			return err
		}
	}
	return nil
}

// readVector reads a CompactSize count and then that many items. The count is
// not trusted for the initial allocation.
func readVector[T any](r io.Reader, read func(io.Reader) (T, error)) ([]T, error) {
	n, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, min(n, 1024))
	for i := uint64(0); i < n; i++ {
		item, err := read(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
