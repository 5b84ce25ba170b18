package txvalidate

import "github.com/cardanogo/byronvalidate/crypto"

// Witness is one record of the witness sequence. Every variant answers the
// single question the rule engine needs: does this witness cover the given
// signatory?
type Witness interface {
	// covers reports whether this witness authorizes signatory, given the
	// message that must have been signed for a PubKeyWitness to verify.
	covers(p crypto.Provider, signMessage []byte, signatory [28]byte) (attempted, verified bool)
}

// PubKeyWitness is the standard Byron witness: a signer public key and a
// signature over the transaction's sign-message.
type PubKeyWitness struct {
	PubKey    []byte
	Signature []byte
}

func (w PubKeyWitness) covers(p crypto.Provider, signMessage []byte, signatory [28]byte) (attempted, verified bool) {
	if p.Blake2b224(w.PubKey) != signatory {
		return false, false
	}
	return true, p.Verify(w.PubKey, signMessage, w.Signature)
}

// ScriptWitness and RedeemerWitness are treated uniformly as "covers
// signatory K": phase-2 script/redeemer evaluation is out of scope for
// this validator, so these never fail verification once they match the
// expected signatory.
type ScriptWitness struct {
	Signatory [28]byte
}

func (w ScriptWitness) covers(_ crypto.Provider, _ []byte, signatory [28]byte) (attempted, verified bool) {
	match := w.Signatory == signatory
	return match, match
}

type RedeemerWitness struct {
	Signatory [28]byte
}

func (w RedeemerWitness) covers(_ crypto.Provider, _ []byte, signatory [28]byte) (attempted, verified bool) {
	match := w.Signatory == signatory
	return match, match
}

// WitnessSet is the ordered witness sequence accompanying a transaction.
type WitnessSet []Witness

// coversSignatory reports whether any witness in the set authorizes
// signatory. attempted is true if some witness claims that identity at
// all (even if its signature failed), which lets R8 distinguish a missing
// witness from one that attempted and failed.
func (ws WitnessSet) coversSignatory(p crypto.Provider, signMessage []byte, signatory [28]byte) (attempted, verified bool) {
	for _, w := range ws {
		a, v := w.covers(p, signMessage, signatory)
		if v {
			return true, true
		}
		attempted = attempted || a
	}
	return attempted, false
}
