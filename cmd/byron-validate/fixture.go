package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cardanogo/byronvalidate/txvalidate"
)

// fixture is the JSON shape a conformance vector is read from: a
// transaction body, the UTxO entries it resolves against, the protocol
// parameters to validate under, and the verdict kind expected in
// response.
type fixture struct {
	Inputs  []fixtureInput  `json:"inputs"`
	Outputs []fixtureOutput `json:"outputs"`
	UTxOs   []fixtureUTxO   `json:"utxos"`

	MinFeeConstant uint64 `json:"min_fee_constant"`
	MinFeeFactor   uint64 `json:"min_fee_factor"`
	MaxTxSize      uint64 `json:"max_tx_size"`
	MinFeeFloor    uint64 `json:"min_fee_floor"`

	// EncodedSize is the tx_size the fixture is validated at, pinned
	// directly rather than computed from CBOR framing; a fixture that omits
	// it is validated at size 0.
	EncodedSize int `json:"encoded_size"`

	ExpectedVerdict string `json:"expected_verdict"`
}

type fixtureInput struct {
	PrevTxID string `json:"prev_tx_id"`
	Index    uint32 `json:"index"`
}

type fixtureOutput struct {
	Payload  string `json:"payload"`
	CRC      uint32 `json:"crc"`
	Lovelace uint64 `json:"lovelace"`
}

type fixtureUTxO struct {
	PrevTxID string `json:"prev_tx_id"`
	Index    uint32 `json:"index"`
	Payload  string `json:"payload"`
	CRC      uint32 `json:"crc"`
	Lovelace uint64 `json:"lovelace"`
}

func loadFixture(path string) (*fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
	}
	return &f, nil
}

func hashFromHex(s string) ([32]byte, error) {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("bad hex %q: %w", s, err)
	}
	if len(b) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

func payloadFromHex(s string) ([28]byte, error) {
	var out [28]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("bad hex %q: %w", s, err)
	}
	if len(b) != 28 {
		return out, fmt.Errorf("expected 28 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

func (f *fixture) body() (txvalidate.TxBody, error) {
	body := txvalidate.TxBody{
		Inputs:  make([]txvalidate.TxIn, len(f.Inputs)),
		Outputs: make([]txvalidate.TxOut, len(f.Outputs)),
	}
	for i, in := range f.Inputs {
		id, err := hashFromHex(in.PrevTxID)
		if err != nil {
			return body, fmt.Errorf("input %d: %w", i, err)
		}
		body.Inputs[i] = txvalidate.StandardTxIn{PrevTxID: id, Index: in.Index}
	}
	for i, out := range f.Outputs {
		payload, err := payloadFromHex(out.Payload)
		if err != nil {
			return body, fmt.Errorf("output %d: %w", i, err)
		}
		body.Outputs[i] = txvalidate.TxOut{
			Address:  txvalidate.Address{Payload: payload, CRC: out.CRC},
			Lovelace: out.Lovelace,
		}
	}
	return body, nil
}

func (f *fixture) utxoView() (txvalidate.MapUTxOView, error) {
	view := make(txvalidate.MapUTxOView, len(f.UTxOs))
	for i, u := range f.UTxOs {
		id, err := hashFromHex(u.PrevTxID)
		if err != nil {
			return nil, fmt.Errorf("utxo %d: %w", i, err)
		}
		payload, err := payloadFromHex(u.Payload)
		if err != nil {
			return nil, fmt.Errorf("utxo %d: %w", i, err)
		}
		key := txvalidate.TxOutPoint{PrevTxID: id, Index: u.Index}
		view[key] = txvalidate.TxOut{
			Address:  txvalidate.Address{Payload: payload, CRC: u.CRC},
			Lovelace: u.Lovelace,
		}
	}
	return view, nil
}

func (f *fixture) params() txvalidate.ProtocolParams {
	return txvalidate.ProtocolParams{
		MinFeeConstant: f.MinFeeConstant,
		MinFeeFactor:   f.MinFeeFactor,
		MaxTxSize:      f.MaxTxSize,
		MinFeeFloor:    f.MinFeeFloor,
	}
}

// fixedSizeCodec reports the fixture's pinned encoded_size instead of
// calling the real CBOR codec, so a fixture's numbers stay stable even if
// the canonical encoding's exact byte count shifts.
type fixedSizeCodec struct{ size int }

func (c fixedSizeCodec) EncodedSize(txvalidate.TxBody) (int, error) { return c.size, nil }
func (c fixedSizeCodec) SignMessage(body txvalidate.TxBody) ([]byte, error) {
	return []byte(fmt.Sprintf("fixture-sign-message-%d", c.size)), nil
}
