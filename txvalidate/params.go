package txvalidate

import "fmt"

// ProtocolParams holds the tunable numerics the rule engine reads. Params
// are passed explicitly per call; there is no ambient "current params"
// singleton.
type ProtocolParams struct {
	// MinFeeConstant is the flat fee component, in lovelace.
	MinFeeConstant uint64

	// MinFeeFactor is the per-byte fee component, in lovelace per byte.
	MinFeeFactor uint64

	// MaxTxSize is the size cap, in bytes.
	MaxTxSize uint64

	// MinFeeFloor is the protocol-defined minimum fee a transaction must
	// pay (R6), kept as a dedicated parameter rather than reusing the R5
	// fee formula: the two can diverge (a transaction can pay exactly the
	// formula-computed fee and still fall below a higher configured
	// floor), so they cannot be the same derived value. See DESIGN.md.
	MinFeeFloor uint64
}

// ExpectedFee computes the linear fee formula min_fee_constant +
// min_fee_factor × txSizeBytes used by R5, as checked arithmetic. ok is
// false on overflow.
func (p ProtocolParams) ExpectedFee(txSizeBytes uint64) (fee uint64, ok bool) {
	perByte, overflow := mulUint64(p.MinFeeFactor, txSizeBytes)
	if overflow {
		return 0, false
	}
	total, overflow := addUint64(p.MinFeeConstant, perByte)
	if overflow {
		return 0, false
	}
	return total, true
}

// Validate reports whether params are plausible for use in production: it
// checks only that the size cap is non-zero; MinFeeFloor, MinFeeConstant
// and MinFeeFactor are not checked. This is a
// config-time sanity check in the style of njchilds90-go-cardano-fees's
// ProtocolParams.Validate(); the rule engine itself never calls it, since
// an all-zero ProtocolParams is a legitimate input to Validate.
func (p ProtocolParams) Validate() error {
	if p.MaxTxSize == 0 {
		return fmt.Errorf("txvalidate: MaxTxSize must be non-zero")
	}
	return nil
}
