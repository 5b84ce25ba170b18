package txvalidate

import "testing"

func TestToADA(t *testing.T) {
	if got := ToADA(1_500_000); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
}

func TestFormatLovelace(t *testing.T) {
	if got := FormatLovelace(1_310_000); got != "1310000 lovelace" {
		t.Fatalf("unexpected format: %s", got)
	}
}

func TestEstimateFeeRejectsZeroCounts(t *testing.T) {
	p := ProtocolParams{MinFeeConstant: 7, MinFeeFactor: 11}
	if _, err := EstimateFee(p, 0, 1); err == nil {
		t.Fatal("expected an error for zero inputs")
	}
	if _, err := EstimateFee(p, 1, 0); err == nil {
		t.Fatal("expected an error for zero outputs")
	}
}

func TestEstimateFeePositive(t *testing.T) {
	p := ProtocolParams{MinFeeConstant: 7, MinFeeFactor: 11}
	fee, err := EstimateFee(p, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if fee <= p.MinFeeConstant {
		t.Fatalf("expected fee to exceed the flat constant, got %d", fee)
	}
}
