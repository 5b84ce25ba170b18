package store

import (
	"encoding/binary"
	"fmt"

	"github.com/cardanogo/byronvalidate/txvalidate"
)

// encodeOutpointKey and encodeUtxoEntry are the on-disk layouts
// BoltUTxOView uses: a fixed-width key/value scheme narrowed to Byron's
// UTxO entry shape (address payload + CRC + lovelace, no covenant fields).

func encodeOutpointKey(p txvalidate.TxOutPoint) []byte {
	// prev_tx_id(32) || index(u32 little-endian)
	out := make([]byte, 32+4)
	copy(out[0:32], p.PrevTxID[:])
	binary.LittleEndian.PutUint32(out[32:36], p.Index)
	return out
}

func decodeOutpointKey(b []byte) (txvalidate.TxOutPoint, error) {
	if len(b) != 36 {
		return txvalidate.TxOutPoint{}, fmt.Errorf("outpoint: expected 36 bytes, got %d", len(b))
	}
	var prev [32]byte
	copy(prev[:], b[0:32])
	index := binary.LittleEndian.Uint32(b[32:36])
	return txvalidate.TxOutPoint{PrevTxID: prev, Index: index}, nil
}

func encodeUtxoEntry(out txvalidate.TxOut) []byte {
	// payload(28) || crc(u32le) || lovelace(u64le)
	buf := make([]byte, 28+4+8)
	copy(buf[0:28], out.Address.Payload[:])
	binary.LittleEndian.PutUint32(buf[28:32], out.Address.CRC)
	binary.LittleEndian.PutUint64(buf[32:40], out.Lovelace)
	return buf
}

func decodeUtxoEntry(b []byte) (txvalidate.TxOut, error) {
	if len(b) != 28+4+8 {
		return txvalidate.TxOut{}, fmt.Errorf("utxo: expected %d bytes, got %d", 28+4+8, len(b))
	}
	var payload [28]byte
	copy(payload[:], b[0:28])
	crc := binary.LittleEndian.Uint32(b[28:32])
	lovelace := binary.LittleEndian.Uint64(b[32:40])
	return txvalidate.TxOut{Address: txvalidate.Address{Payload: payload, CRC: crc}, Lovelace: lovelace}, nil
}
