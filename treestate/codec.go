package treestate

import (
	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/fxamacker/cbor/v2"
)

// NewCodec returns the deterministic CBOR codec for snapshots and anchor
// payloads.
func NewCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		newDecOptions(),
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

// newDecOptions are the deterministic decoding options, with unsigned ints
// decoding to uint64, and duplicate map keys rejected.
func newDecOptions() cbor.DecOptions {
	opts := dtcbor.NewDeterministicDecOpts()
	opts.DupMapKey = cbor.DupMapKeyEnforcedAPF
	return opts
}

func newSign1DecOptions() []dtcose.SignOption {
	return []dtcose.SignOption{dtcose.WithDecOptions(newDecOptions())}
}
