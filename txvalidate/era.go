package txvalidate

// MultiEraTx is the closed era sum type validation dispatches on, mirroring
// pallas-applying's match on MultiEraTx::{Byron, AlonzoCompatible, Babbage,
// _}. Only ByronTx carries phase-1 semantics; every other variant is a
// deliberate dead end.
type MultiEraTx interface {
	isMultiEraTx()
}

// ByronTx is a parsed Byron-era transaction: the body plus its
// accompanying witnesses, ready for the R1-R8 rule sequence.
type ByronTx struct {
	Body      TxBody
	Witnesses WitnessSet
}

func (ByronTx) isMultiEraTx() {}

// AlonzoCompatibleTx and BabbageTx are recognized-but-unsupported eras:
// phase-1 validation never inspects their payload, it only needs to know
// they are not Byron.
type AlonzoCompatibleTx struct{}

func (AlonzoCompatibleTx) isMultiEraTx() {}

type BabbageTx struct{}

func (BabbageTx) isMultiEraTx() {}

// UnknownEraTx is any era outside the closed set this validator
// recognizes at all (the pallas-applying match's trailing "_" arm).
type UnknownEraTx struct{}

func (UnknownEraTx) isMultiEraTx() {}
