// Package codec is the concrete Codec implementation the validator uses
// outside of tests: canonical CBOR, via the same library the wider
// Cardano Go ecosystem standardizes on (see DESIGN.md).
package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/cardanogo/byronvalidate/txvalidate"
)

// wireTxIn and wireTxOut mirror txvalidate.TxIn/TxOut in a CBOR-friendly
// shape. wireTxIn encodes as a flat four-element array (tag, prev tx id,
// index, opaque payload) with the variant tag first and the fields of the
// other variant left empty; wireTxOut encodes as (payload, crc, lovelace).
// This is not Byron's own wire layout: a standard input is not nested as
// `TxIn::Variant0(CborWrap((tx_id, index)))` (no tag-24 embedded CBOR), so
// the sizes CBORCodec reports are those of this layout.
type wireTxIn struct {
	_         struct{} `cbor:",toarray"`
	Tag       uint64
	PrevTxID  []byte
	Index     uint32
	Other     []byte
}

type wireTxOut struct {
	_        struct{} `cbor:",toarray"`
	Payload  []byte
	CRC      uint32
	Lovelace uint64
}

type wireBody struct {
	_          struct{} `cbor:",toarray"`
	Inputs     []wireTxIn
	Outputs    []wireTxOut
	Attributes map[uint64][]byte
}

var encMode = func() cbor.EncMode {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		// CanonicalEncOptions() always yields a valid EncMode; this path
		// is unreachable.
		panic(err)
	}
	return mode
}()

func toWire(body txvalidate.TxBody) wireBody {
	w := wireBody{
		Inputs:     make([]wireTxIn, len(body.Inputs)),
		Outputs:    make([]wireTxOut, len(body.Outputs)),
		Attributes: body.Attributes,
	}
	for i, in := range body.Inputs {
		switch v := in.(type) {
		case txvalidate.StandardTxIn:
			w.Inputs[i] = wireTxIn{Tag: 0, PrevTxID: v.PrevTxID[:], Index: v.Index}
		case txvalidate.OtherTxIn:
			w.Inputs[i] = wireTxIn{Tag: uint64(v.Tag), Other: v.Payload}
		}
	}
	for i, out := range body.Outputs {
		w.Outputs[i] = wireTxOut{Payload: out.Address.Payload[:], CRC: out.Address.CRC, Lovelace: out.Lovelace}
	}
	return w
}

// CBORCodec implements txvalidate.Codec over canonical (core deterministic
// encoding, RFC 8949 §4.2.1-style) CBOR.
type CBORCodec struct{}

func (CBORCodec) EncodedSize(body txvalidate.TxBody) (int, error) {
	b, err := encMode.Marshal(toWire(body))
	if err != nil {
		return 0, fmt.Errorf("codec: encode tx body: %w", err)
	}
	return len(b), nil
}

func (CBORCodec) SignMessage(body txvalidate.TxBody) ([]byte, error) {
	b, err := encMode.Marshal(toWire(body))
	if err != nil {
		return nil, fmt.Errorf("codec: encode sign-message: %w", err)
	}
	return b, nil
}

var _ txvalidate.Codec = CBORCodec{}
