// Package txvalidate is the phase-1 Byron transaction validator: the
// structural, balance, size, fee, and witness checks a transaction must
// pass before it may modify the UTxO set. Validation is a pure function of
// its inputs — it never mutates the UTxO view and holds no internal state
// between calls.
package txvalidate

import "hash/crc32"

// TxOutPoint is the canonical key used to probe a UTxOView: the pair of a
// previous transaction id and output index. Only StandardTxIn inputs
// normalize to one.
type TxOutPoint struct {
	PrevTxID [32]byte
	Index    uint32
}

// TxIn is the tagged input-descriptor sum. Collapsing the two variants into
// an opaque byte blob would lose the error-class separation between
// IllFormedInput and InputNotUTxO, so the distinction is a closed Go
// interface rather than a single struct with a "kind" byte.
type TxIn interface {
	isTxIn()
}

// StandardTxIn is the resolvable input variant: a previous-transaction
// digest and output index, exactly pallas-applying's
// TxIn::Variant0(CborWrap((tx_id, index))).
type StandardTxIn struct {
	PrevTxID [32]byte
	Index    uint32
}

func (StandardTxIn) isTxIn() {}

// OtherTxIn is the non-standard, syntactically valid but semantically
// unresolvable input variant. It carries an opaque tag byte and payload and
// never normalizes to a TxOutPoint.
type OtherTxIn struct {
	Tag     byte
	Payload []byte
}

func (OtherTxIn) isTxIn() {}

// Normalize converts a wire-level input descriptor into the canonical key
// used to probe the UTxOView. It is a pure, total function: StandardTxIn
// always normalizes, every other variant never does.
func Normalize(in TxIn) (TxOutPoint, bool) {
	std, ok := in.(StandardTxIn)
	if !ok {
		return TxOutPoint{}, false
	}
	return TxOutPoint{PrevTxID: std.PrevTxID, Index: std.Index}, true
}

// Address is a Byron address: a payload (here, the Blake2b-224 hash of the
// spending public key — Byron's actual address root) plus its 32-bit CRC
// checksum, this payload is also what witnesses authorize against as the
// signatory. Byron addresses are checked on the wire with plain CRC32 (IEEE
// polynomial) over the payload; there is no third-party replacement for
// hash/crc32 in the ecosystem more idiomatic than the standard library here
// (see DESIGN.md).
type Address struct {
	Payload [28]byte
	CRC     uint32
}

// ValidChecksum reports whether a's CRC matches CRC32-IEEE of its
// payload. The rule engine never calls this itself (R1-R8 operate on
// already-normalized addresses), but it is the building block a decoder
// upstream of this package would use to reject a malformed address before
// it ever reaches Validate.
func (a Address) ValidChecksum() bool {
	return crc32.ChecksumIEEE(a.Payload[:]) == a.CRC
}

// TxOut is a transaction output: a destination address and a lovelace
// amount.
type TxOut struct {
	Address  Address
	Lovelace uint64
}

// TxBody is a Byron transaction body: an ordered sequence of inputs, an
// ordered sequence of outputs, and an opaque attribute map. Attributes are
// carried but never interpreted; Byron's tx_attributes are
// forward-compatibility scaffolding with no phase-1 semantics.
type TxBody struct {
	Inputs     []TxIn
	Outputs    []TxOut
	Attributes map[uint64][]byte
}
