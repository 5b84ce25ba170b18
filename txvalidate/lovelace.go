package txvalidate

import "fmt"

// LovelacePerADA is the number of lovelace in one ADA.
const LovelacePerADA uint64 = 1_000_000

// ToADA converts a lovelace amount to ADA as a float64, for display
// purposes only; the rule engine itself only ever compares raw lovelace.
//
// Example:
//
//	ada := txvalidate.ToADA(1_500_000) // 1.5
func ToADA(lovelace uint64) float64 {
	return float64(lovelace) / float64(LovelacePerADA)
}

// FormatLovelace renders a lovelace amount with its unit suffix.
//
// Example:
//
//	txvalidate.FormatLovelace(1_310_000) // "1310000 lovelace"
func FormatLovelace(lovelace uint64) string {
	return fmt.Sprintf("%d lovelace", lovelace)
}

// EstimateFee gives a caller a quick, non-authoritative fee estimate from
// a shape (input/output counts) before a transaction is fully built, using
// a small per-item byte model. It is never used by Validate itself, which
// only ever trusts the codec's exact EncodedSize (R5/R7 both require the
// real figure, not an estimate).
//
// Example:
//
//	p := txvalidate.ProtocolParams{MinFeeConstant: 7, MinFeeFactor: 11}
//	fee, _ := txvalidate.EstimateFee(p, 1, 1)
func EstimateFee(p ProtocolParams, numInputs, numOutputs uint64) (uint64, error) {
	if numInputs == 0 {
		return 0, fmt.Errorf("txvalidate: EstimateFee: numInputs must be at least 1")
	}
	if numOutputs == 0 {
		return 0, fmt.Errorf("txvalidate: EstimateFee: numOutputs must be at least 1")
	}

	const (
		baseTxSize     uint64 = 20
		bytesPerInput  uint64 = 34
		bytesPerOutput uint64 = 38
	)
	estimatedSize := baseTxSize + bytesPerInput*numInputs + bytesPerOutput*numOutputs

	fee, ok := p.ExpectedFee(estimatedSize)
	if !ok {
		return 0, fmt.Errorf("txvalidate: EstimateFee: fee computation overflows")
	}
	return fee, nil
}
