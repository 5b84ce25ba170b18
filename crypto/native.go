package crypto

import (
	"crypto/ed25519"

	"golang.org/x/crypto/blake2b"
)

// Native is the default Provider: Ed25519 signature verification (Byron's
// actual witness scheme) and Blake2b hashing (Byron's actual digest
// function), both via well-established Go implementations. Ed25519 itself
// has been in the standard library since Go 1.13 and is the canonical Go
// implementation of the scheme; there is no third-party replacement in the
// retrieval pack more authoritative than crypto/ed25519 (see DESIGN.md).
type Native struct{}

func (Native) Verify(pubkey, message, sig []byte) bool {
	if len(pubkey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubkey), message, sig)
}

func (Native) Blake2b256(input []byte) [32]byte {
	return blake2b.Sum256(input)
}

func (Native) Blake2b224(input []byte) [28]byte {
	h, err := blake2b.New(28, nil)
	if err != nil {
		// blake2b.New only errors on bad key/size; 28 bytes and a nil key
		// are always valid, so this path is unreachable.
		panic(err)
	}
	_, _ = h.Write(input)
	var out [28]byte
	copy(out[:], h.Sum(nil))
	return out
}

var _ Provider = Native{}
