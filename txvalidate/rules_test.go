package txvalidate

import (
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/cardanogo/byronvalidate/crypto"
)

var errEncodeFailed = errors.New("fake encode failure")

// fakeCodec reports a caller-fixed size instead of actually encoding a
// body, so scenario tests can pin tx_size to an exact value without
// constructing real CBOR bytes.
type fakeCodec struct {
	size int
	err  error
}

func (f fakeCodec) EncodedSize(TxBody) (int, error) { return f.size, f.err }
func (f fakeCodec) SignMessage(TxBody) ([]byte, error) {
	return []byte("sign-message"), nil
}

func signatoryFor(b byte) [28]byte {
	var out [28]byte
	out[0] = b
	return out
}

// witnessedOutput builds a resolvable UTxO entry together with a
// ScriptWitness that trivially covers its signatory, so scenarios that
// only exercise R1-R7 don't also need a real signature.
func witnessedOutput(signatory [28]byte, lovelace uint64) (TxOut, Witness) {
	out := TxOut{Address: Address{Payload: signatory}, Lovelace: lovelace}
	return out, ScriptWitness{Signatory: signatory}
}

func point(id byte, index uint32) TxOutPoint {
	var prev [32]byte
	prev[0] = id
	return TxOutPoint{PrevTxID: prev, Index: index}
}

func standardIn(id byte, index uint32) TxIn {
	var prev [32]byte
	prev[0] = id
	return StandardTxIn{PrevTxID: prev, Index: index}
}

func mustVerdict(t *testing.T, err error) *Verdict {
	t.Helper()
	v, ok := AsVerdict(err)
	if !ok {
		t.Fatalf("expected a *Verdict, got %T (%v)", err, err)
	}
	return v
}

// TestValidateSuccessfulCase checks a balanced transaction against the
// fee formula: fee = 7 + 11*82 = 909 = 100000 - 99091.
func TestValidateSuccessfulCase(t *testing.T) {
	signatory := signatoryFor(1)
	out, witness := witnessedOutput(signatory, 100_000)
	utxos := MapUTxOView{point(1, 3): out}
	body := TxBody{
		Inputs:  []TxIn{standardIn(1, 3)},
		Outputs: []TxOut{{Address: Address{Payload: signatory}, Lovelace: 99_091}},
	}
	tx := ByronTx{Body: body, Witnesses: WitnessSet{witness}}
	params := ProtocolParams{MinFeeConstant: 7, MinFeeFactor: 11, MaxTxSize: 100, MinFeeFloor: 909}

	err := Validate(tx, utxos, fakeCodec{size: 82}, crypto.Native{}, params)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestValidateEmptyIns(t *testing.T) {
	tx := ByronTx{Body: TxBody{}}
	err := Validate(tx, MapUTxOView{}, fakeCodec{size: 0}, crypto.Native{}, ProtocolParams{})
	v := mustVerdict(t, err)
	if v.Kind != TxInsEmpty {
		t.Fatalf("expected TxInsEmpty, got %v", v.Kind)
	}
}

func TestValidateEmptyOuts(t *testing.T) {
	signatory := signatoryFor(1)
	out, witness := witnessedOutput(signatory, 100_000)
	utxos := MapUTxOView{point(1, 0): out}
	body := TxBody{Inputs: []TxIn{standardIn(1, 0)}}
	tx := ByronTx{Body: body, Witnesses: WitnessSet{witness}}

	err := Validate(tx, utxos, fakeCodec{size: 10}, crypto.Native{}, ProtocolParams{MaxTxSize: 1000})
	v := mustVerdict(t, err)
	if v.Kind != TxOutsEmpty {
		t.Fatalf("expected TxOutsEmpty, got %v", v.Kind)
	}
}

func TestValidateUnfoundUTxO(t *testing.T) {
	body := TxBody{
		Inputs:  []TxIn{standardIn(9, 0)},
		Outputs: []TxOut{{Address: Address{Payload: signatoryFor(1)}, Lovelace: 1_000}},
	}
	tx := ByronTx{Body: body}

	err := Validate(tx, MapUTxOView{}, fakeCodec{size: 10}, crypto.Native{}, ProtocolParams{MaxTxSize: 1000})
	v := mustVerdict(t, err)
	if v.Kind != InputNotUTxO {
		t.Fatalf("expected InputNotUTxO, got %v", v.Kind)
	}
}

func TestValidateNoLovelaceInOutput(t *testing.T) {
	signatory := signatoryFor(1)
	out, witness := witnessedOutput(signatory, 100_000)
	utxos := MapUTxOView{point(1, 0): out}
	body := TxBody{
		Inputs:  []TxIn{standardIn(1, 0)},
		Outputs: []TxOut{{Address: Address{Payload: signatory}, Lovelace: 0}},
	}
	tx := ByronTx{Body: body, Witnesses: WitnessSet{witness}}

	err := Validate(tx, utxos, fakeCodec{size: 10}, crypto.Native{}, ProtocolParams{MaxTxSize: 1000})
	v := mustVerdict(t, err)
	if v.Kind != OutputWithoutLovelace {
		t.Fatalf("expected OutputWithoutLovelace, got %v", v.Kind)
	}
}

// TestValidateWrongFees overpays the output by one lovelace, so the paid
// fee comes out to 908 against an expected 909.
func TestValidateWrongFees(t *testing.T) {
	signatory := signatoryFor(1)
	out, witness := witnessedOutput(signatory, 100_000)
	utxos := MapUTxOView{point(1, 3): out}
	body := TxBody{
		Inputs:  []TxIn{standardIn(1, 3)},
		Outputs: []TxOut{{Address: Address{Payload: signatory}, Lovelace: 99_092}},
	}
	tx := ByronTx{Body: body, Witnesses: WitnessSet{witness}}
	params := ProtocolParams{MinFeeConstant: 7, MinFeeFactor: 11, MaxTxSize: 100}

	err := Validate(tx, utxos, fakeCodec{size: 82}, crypto.Native{}, params)
	v := mustVerdict(t, err)
	if v.Kind != WrongFees {
		t.Fatalf("expected WrongFees, got %v", v.Kind)
	}
	if v.Paid != 908 || v.Expected != 909 {
		t.Fatalf("expected paid=908 expected=909, got paid=%d expected=%d", v.Paid, v.Expected)
	}
}

// TestValidateFeesBelowMinimum computes a correct 909-lovelace fee that
// still falls below a higher configured floor.
func TestValidateFeesBelowMinimum(t *testing.T) {
	signatory := signatoryFor(1)
	out, witness := witnessedOutput(signatory, 100_000)
	utxos := MapUTxOView{point(1, 3): out}
	body := TxBody{
		Inputs:  []TxIn{standardIn(1, 3)},
		Outputs: []TxOut{{Address: Address{Payload: signatory}, Lovelace: 99_091}},
	}
	tx := ByronTx{Body: body, Witnesses: WitnessSet{witness}}
	params := ProtocolParams{MinFeeConstant: 7, MinFeeFactor: 11, MaxTxSize: 100, MinFeeFloor: 1000}

	err := Validate(tx, utxos, fakeCodec{size: 82}, crypto.Native{}, params)
	v := mustVerdict(t, err)
	if v.Kind != FeesBelowMin {
		t.Fatalf("expected FeesBelowMin, got %v", v.Kind)
	}
}

// TestValidateMaxTxSizeExceeded reuses the successful case's numbers with
// max_tx_size lowered to 81 against a tx_size of 82.
func TestValidateMaxTxSizeExceeded(t *testing.T) {
	signatory := signatoryFor(1)
	out, witness := witnessedOutput(signatory, 100_000)
	utxos := MapUTxOView{point(1, 3): out}
	body := TxBody{
		Inputs:  []TxIn{standardIn(1, 3)},
		Outputs: []TxOut{{Address: Address{Payload: signatory}, Lovelace: 99_091}},
	}
	tx := ByronTx{Body: body, Witnesses: WitnessSet{witness}}
	params := ProtocolParams{MinFeeConstant: 7, MinFeeFactor: 11, MaxTxSize: 81, MinFeeFloor: 909}

	err := Validate(tx, utxos, fakeCodec{size: 82}, crypto.Native{}, params)
	v := mustVerdict(t, err)
	if v.Kind != MaxTxSizeExceeded {
		t.Fatalf("expected MaxTxSizeExceeded, got %v", v.Kind)
	}
	if v.Size != 82 || v.Cap != 81 {
		t.Fatalf("expected size=82 cap=81, got size=%d cap=%d", v.Size, v.Cap)
	}
}

func TestValidateIllFormedInput(t *testing.T) {
	body := TxBody{
		Inputs:  []TxIn{OtherTxIn{Tag: 7, Payload: []byte{1, 2, 3}}},
		Outputs: []TxOut{{Address: Address{Payload: signatoryFor(1)}, Lovelace: 1}},
	}
	tx := ByronTx{Body: body}

	err := Validate(tx, MapUTxOView{}, fakeCodec{size: 10}, crypto.Native{}, ProtocolParams{MaxTxSize: 1000})
	v := mustVerdict(t, err)
	if v.Kind != IllFormedInput {
		t.Fatalf("expected IllFormedInput, got %v", v.Kind)
	}
}

func TestValidateMissingWitness(t *testing.T) {
	signatory := signatoryFor(1)
	out := TxOut{Address: Address{Payload: signatory}, Lovelace: 100_000}
	utxos := MapUTxOView{point(1, 0): out}
	body := TxBody{
		Inputs:  []TxIn{standardIn(1, 0)},
		Outputs: []TxOut{{Address: Address{Payload: signatory}, Lovelace: 99_993}},
	}
	tx := ByronTx{Body: body} // no witnesses at all
	params := ProtocolParams{MinFeeConstant: 7, MinFeeFactor: 0, MaxTxSize: 1000}

	err := Validate(tx, utxos, fakeCodec{size: 10}, crypto.Native{}, params)
	v := mustVerdict(t, err)
	if v.Kind != MissingWitness {
		t.Fatalf("expected MissingWitness, got %v", v.Kind)
	}
}

func TestValidateBadSignature(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	provider := crypto.Native{}
	signatory := provider.Blake2b224(pub)

	out := TxOut{Address: Address{Payload: signatory}, Lovelace: 100_000}
	utxos := MapUTxOView{point(1, 0): out}
	body := TxBody{
		Inputs:  []TxIn{standardIn(1, 0)},
		Outputs: []TxOut{{Address: Address{Payload: signatory}, Lovelace: 99_993}},
	}
	witnesses := WitnessSet{PubKeyWitness{PubKey: pub, Signature: []byte("not-a-real-signature")}}
	tx := ByronTx{Body: body, Witnesses: witnesses}
	params := ProtocolParams{MinFeeConstant: 7, MinFeeFactor: 0, MaxTxSize: 1000}

	gotErr := Validate(tx, utxos, fakeCodec{size: 10}, provider, params)
	v := mustVerdict(t, gotErr)
	if v.Kind != BadSignature {
		t.Fatalf("expected BadSignature, got %v", v.Kind)
	}
}

func TestValidateUnsupportedEra(t *testing.T) {
	err := Validate(AlonzoCompatibleTx{}, MapUTxOView{}, fakeCodec{size: 0}, crypto.Native{}, ProtocolParams{})
	v := mustVerdict(t, err)
	if v.Kind != UnsupportedEra {
		t.Fatalf("expected UnsupportedEra, got %v", v.Kind)
	}
}

func TestValidateTxSizeUnavailable(t *testing.T) {
	tx := ByronTx{Body: TxBody{Inputs: []TxIn{standardIn(1, 0)}, Outputs: []TxOut{{Lovelace: 1}}}}
	err := Validate(tx, MapUTxOView{}, fakeCodec{err: errEncodeFailed}, crypto.Native{}, ProtocolParams{})
	v := mustVerdict(t, err)
	if v.Kind != TxSizeUnavailable {
		t.Fatalf("expected TxSizeUnavailable, got %v", v.Kind)
	}
}
