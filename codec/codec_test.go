package codec

import (
	"testing"

	"github.com/cardanogo/byronvalidate/txvalidate"
)

func sampleBody() txvalidate.TxBody {
	var prev [32]byte
	prev[0] = 7
	return txvalidate.TxBody{
		Inputs: []txvalidate.TxIn{
			txvalidate.StandardTxIn{PrevTxID: prev, Index: 3},
		},
		Outputs: []txvalidate.TxOut{
			{Address: txvalidate.Address{Payload: [28]byte{1}, CRC: 42}, Lovelace: 99_091},
		},
		Attributes: map[uint64][]byte{},
	}
}

func TestCBORCodecDeterministic(t *testing.T) {
	c := CBORCodec{}
	body := sampleBody()
	a, err := c.EncodedSize(body)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.EncodedSize(body)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("expected deterministic size, got %d vs %d", a, b)
	}
	if a == 0 {
		t.Fatal("expected a non-zero encoded size")
	}
}

func TestCBORCodecSignMessageStable(t *testing.T) {
	c := CBORCodec{}
	body := sampleBody()
	m1, err := c.SignMessage(body)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := c.SignMessage(body)
	if err != nil {
		t.Fatal(err)
	}
	if string(m1) != string(m2) {
		t.Fatal("expected identical sign-message bytes across calls")
	}
}

func TestCBORCodecSizeGrowsWithOutputs(t *testing.T) {
	c := CBORCodec{}
	small := sampleBody()
	large := sampleBody()
	large.Outputs = append(large.Outputs, large.Outputs[0])

	smallSize, err := c.EncodedSize(small)
	if err != nil {
		t.Fatal(err)
	}
	largeSize, err := c.EncodedSize(large)
	if err != nil {
		t.Fatal(err)
	}
	if largeSize <= smallSize {
		t.Fatalf("expected larger body to encode larger, got %d vs %d", smallSize, largeSize)
	}
}
