// Package crypto is the narrow cryptographic collaborator the validator
// consults for transaction/address hashing and witness signature
// verification. Byron rules never touch key material or signing directly;
// they only call through this interface.
package crypto

// Verifier is the interface the rule engine uses for witness signature
// checks (R8). Implementations return false rather than an error on a bad
// signature: verification has no error channel.
type Verifier interface {
	// Verify reports whether sig is a valid signature by pubkey over message.
	Verify(pubkey, message, sig []byte) bool
}

// Hasher exposes Byron's Blake2b digests, each method narrow and
// single-purpose rather than one general Hash(algorithm, input) call.
// Blake2b224 maps a witness public key to the 28-byte address payload it
// must match; Blake2b256 is the 256-bit digest. The rule engine verifies
// signatures over the Codec's sign-message bytes as they are, without
// hashing them first.
type Hasher interface {
	Blake2b256(input []byte) [32]byte
	Blake2b224(input []byte) [28]byte
}

// Provider bundles Verifier and Hasher. Implementations may back it with
// native Go crypto (see Native) or a hardware/HSM-backed signer; the
// validator only ever depends on this interface.
type Provider interface {
	Verifier
	Hasher
}
