package cli

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
)

var (
	errEmptyInput    = errors.New("cli: empty input")
	errUnknownFormat = errors.New("cli: unknown frontier format")
)

type ommerJSON struct {
	Address string `json:"address"`
	Value   string `json:"value"`
}

type frontierJSON struct {
	Depth    *uint8   `json:"depth,omitempty"`
	Size     uint64   `json:"size"`
	Position *uint64  `json:"position,omitempty"`
	Leaf     string   `json:"leaf,omitempty"`
	Ommers   []string `json:"ommers,omitempty"`
	Root     string   `json:"root,omitempty"`
}

type bridgeJSON struct {
	Version  byte         `json:"version"`
	Prior    *uint64      `json:"prior,omitempty"`
	Position uint64       `json:"position"`
	Tracking []string     `json:"tracking"`
	Ommers   []ommerJSON  `json:"ommers"`
	Frontier frontierJSON `json:"frontier"`
}

type bridgeSummaryJSON struct {
	Prior    *uint64 `json:"prior,omitempty"`
	Position uint64  `json:"position"`
	Tracking int     `json:"tracking"`
	Ommers   int     `json:"ommers"`
}

type snapshotJSON struct {
	Pool     string              `json:"pool"`
	Frontier frontierJSON        `json:"frontier"`
	Bridges  []bridgeSummaryJSON `json:"bridges"`
}

type anchorJSON struct {
	Pool      string `json:"pool"`
	Depth     uint8  `json:"depth"`
	TreeSize  uint64 `json:"treeSize"`
	Timestamp int64  `json:"timestamp"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// decodeHexArg decodes a hex argument, reading it from stdin when arg is "-".
func decodeHexArg(stdin io.Reader, arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		arg = string(data)
	}
	data, err := hex.DecodeString(strings.TrimSpace(strings.TrimPrefix(arg, "0x")))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errEmptyInput
	}
	return data, nil
}

// readFileArg reads a file argument, reading stdin when arg is "-".
func readFileArg(stdin io.Reader, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(arg)
}
