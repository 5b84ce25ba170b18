package txvalidate

import "fmt"

// VerdictKind is the closed taxonomy of phase-1 validation outcomes. Every
// failure the rule engine can produce is one of these; there is no generic
// "other error" case.
type VerdictKind int

const (
	// The zero kind is left unnamed and is never constructed as a Verdict:
	// success is a nil error, not a Verdict.
	_ VerdictKind = iota

	UnsupportedEra
	TxSizeUnavailable
	TxInsEmpty
	TxOutsEmpty
	IllFormedInput
	InputNotUTxO
	OutputWithoutLovelace
	WrongFees
	FeesBelowMin
	MaxTxSizeExceeded
	MissingWitness
	BadSignature
)

var verdictNames = map[VerdictKind]string{
	UnsupportedEra:        "unsupported_era",
	TxSizeUnavailable:     "tx_size_unavailable",
	TxInsEmpty:            "tx_ins_empty",
	TxOutsEmpty:           "tx_outs_empty",
	IllFormedInput:        "ill_formed_input",
	InputNotUTxO:          "input_not_utxo",
	OutputWithoutLovelace: "output_without_lovelace",
	WrongFees:             "wrong_fees",
	FeesBelowMin:          "fees_below_min",
	MaxTxSizeExceeded:     "max_tx_size_exceeded",
	MissingWitness:        "missing_witness",
	BadSignature:          "bad_signature",
}

func (k VerdictKind) String() string {
	if name, ok := verdictNames[k]; ok {
		return name
	}
	return fmt.Sprintf("verdict_kind(%d)", int(k))
}

// Verdict is the single error type phase-1 validation ever returns: a
// closed kind plus free-form detail for logging, in the style of
// consensus/errors.go's ErrorCode/TxError{Code, Msg}. Callers that need to
// branch on outcome should switch on Kind, never parse Error().
//
// Paid/Expected and Size/Cap are populated only for the verdicts the
// specification calls out for diagnostics (WrongFees, MaxTxSizeExceeded);
// they are zero otherwise.
type Verdict struct {
	Kind     VerdictKind
	Detail   string
	Paid     uint64
	Expected uint64
	Size     uint64
	Cap      uint64
}

func (v *Verdict) Error() string {
	if v.Detail == "" {
		return v.Kind.String()
	}
	return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
}

func newVerdict(kind VerdictKind, detail string, args ...any) *Verdict {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Verdict{Kind: kind, Detail: detail}
}

func wrongFees(paid, expected uint64) *Verdict {
	return &Verdict{
		Kind:     WrongFees,
		Detail:   fmt.Sprintf("paid %d, expected %d", paid, expected),
		Paid:     paid,
		Expected: expected,
	}
}

func maxTxSizeExceeded(size, cap uint64) *Verdict {
	return &Verdict{
		Kind:   MaxTxSizeExceeded,
		Detail: fmt.Sprintf("size %d exceeds cap %d", size, cap),
		Size:   size,
		Cap:    cap,
	}
}

// AsVerdict reports whether err is a *Verdict and, if so, returns it. This
// is the idiomatic unwrap callers use instead of a type assertion, in case
// future wrapping is introduced; callers should branch on Kind rather than
// parse the Error() string.
func AsVerdict(err error) (*Verdict, bool) {
	v, ok := err.(*Verdict)
	return v, ok
}
