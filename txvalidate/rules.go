package txvalidate

import "github.com/cardanogo/byronvalidate/crypto"

// Validate runs the full phase-1 rule sequence against tx, dispatching on
// era first. It is a pure function of its arguments: no package-level
// state, no mutation of utxos. A nil return means every rule passed; any
// failure is a *Verdict.
func Validate(tx MultiEraTx, utxos UTxOView, codec Codec, provider crypto.Provider, params ProtocolParams) error {
	byron, ok := tx.(ByronTx)
	if !ok {
		return newVerdict(UnsupportedEra, "era %T carries no phase-1 semantics", tx)
	}
	return validateByron(byron, utxos, codec, provider, params)
}

// validateByron is the R1-R8 pipeline. The wire size is computed once, up
// front, since both the fee formula (R5) and the size cap (R7) must agree
// on the same number; R1-R8 then run in a fixed order, each a total
// function over (tx, utxos, params, witnesses) that short-circuits on the
// first failure, mirroring pallas-applying's chain of `?`-propagated
// validate_* calls.
func validateByron(tx ByronTx, utxos UTxOView, codec Codec, provider crypto.Provider, params ProtocolParams) error {
	annotated, err := Annotate(tx.Body, codec)
	if err != nil {
		return err
	}
	body := annotated.Body
	size := annotated.SizeBytes

	// R1: inputs sequence length >= 1.
	if len(body.Inputs) == 0 {
		return newVerdict(TxInsEmpty, "")
	}

	// R2: every input normalizes, and its canonical key is present in the
	// UTxO view. Fails on the first offending input in sequence order,
	// reporting IllFormedInput before ever consulting the view.
	resolved := make([]TxOut, len(body.Inputs))
	for i, in := range body.Inputs {
		point, ok := Normalize(in)
		if !ok {
			return newVerdict(IllFormedInput, "input %d is not a standard input", i)
		}
		out, found := utxos.Lookup(point)
		if !found {
			return newVerdict(InputNotUTxO, "input %d (%x#%d) is not in the UTxO set", i, point.PrevTxID, point.Index)
		}
		resolved[i] = out
	}

	// R3: outputs sequence length >= 1.
	if len(body.Outputs) == 0 {
		return newVerdict(TxOutsEmpty, "")
	}

	// R4: every output amount > 0.
	for i, out := range body.Outputs {
		if out.Lovelace == 0 {
			return newVerdict(OutputWithoutLovelace, "output %d carries no lovelace", i)
		}
	}

	// R5: fees are balance-consistent and exactly match the fee formula.
	// All inputs already resolved above, so these sums cannot include an
	// unresolved entry.
	totalIn, overflow := sumLovelace(resolved)
	if overflow {
		return wrongFees(0, 0)
	}
	totalOut, overflow := sumLovelace(body.Outputs)
	if overflow {
		return wrongFees(0, 0)
	}
	expectedFee, ok := params.ExpectedFee(size)
	if !ok {
		return wrongFees(0, 0)
	}
	paidFee, underflow := subUint64(totalIn, totalOut)
	if underflow {
		return wrongFees(0, expectedFee)
	}
	if paidFee != expectedFee {
		return wrongFees(paidFee, expectedFee)
	}

	// R6: paid fees >= minimum floor (ProtocolParams.MinFeeFloor; see
	// DESIGN.md for why this is independent of the R5 formula).
	if paidFee < params.MinFeeFloor {
		return newVerdict(FeesBelowMin, "fee %d is below the configured floor %d", paidFee, params.MinFeeFloor)
	}

	// R7: tx_size <= max_tx_size.
	if size > params.MaxTxSize {
		return maxTxSizeExceeded(size, params.MaxTxSize)
	}

	// R8: every required signatory has a matching witness.
	signMessage, err := codec.SignMessage(body)
	if err != nil {
		return newVerdict(TxSizeUnavailable, "%v", err)
	}
	for i, out := range resolved {
		attempted, verified := tx.Witnesses.coversSignatory(provider, signMessage, out.Address.Payload)
		if !attempted {
			return newVerdict(MissingWitness, "input %d has no witness for its signatory", i)
		}
		if !verified {
			return newVerdict(BadSignature, "input %d's witness failed signature verification", i)
		}
	}

	return nil
}
