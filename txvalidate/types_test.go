package txvalidate

import (
	"hash/crc32"
	"testing"
)

func TestAddressValidChecksum(t *testing.T) {
	payload := [28]byte{1, 2, 3, 4}
	addr := Address{Payload: payload, CRC: crc32.ChecksumIEEE(payload[:])}
	if !addr.ValidChecksum() {
		t.Fatal("expected checksum to validate")
	}

	tampered := Address{Payload: payload, CRC: addr.CRC + 1}
	if tampered.ValidChecksum() {
		t.Fatal("expected tampered checksum to fail validation")
	}
}

func TestAnnotate(t *testing.T) {
	body := TxBody{Outputs: []TxOut{{Lovelace: 1}}}
	annotated, err := Annotate(body, fakeCodec{size: 42})
	if err != nil {
		t.Fatal(err)
	}
	if annotated.SizeBytes != 42 {
		t.Fatalf("expected SizeBytes=42, got %d", annotated.SizeBytes)
	}
	if len(annotated.Body.Outputs) != 1 {
		t.Fatalf("expected body to round-trip, got %+v", annotated.Body)
	}

	if _, err := Annotate(body, fakeCodec{err: errEncodeFailed}); err == nil {
		t.Fatal("expected an error when the codec cannot encode")
	} else if v, ok := AsVerdict(err); !ok || v.Kind != TxSizeUnavailable {
		t.Fatalf("expected TxSizeUnavailable verdict, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	std := StandardTxIn{PrevTxID: [32]byte{5}, Index: 2}
	point, ok := Normalize(std)
	if !ok {
		t.Fatal("expected StandardTxIn to normalize")
	}
	if point.PrevTxID != std.PrevTxID || point.Index != std.Index {
		t.Fatalf("unexpected normalized point: %+v", point)
	}

	other := OtherTxIn{Tag: 9, Payload: []byte{1}}
	if _, ok := Normalize(other); ok {
		t.Fatal("expected OtherTxIn to never normalize")
	}
}
