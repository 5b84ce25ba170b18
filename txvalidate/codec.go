package txvalidate

// Codec is the pure size-oracle the rule engine consults for R7. Validation
// never serializes a transaction itself; it asks a Codec how large the
// wire encoding is and what bytes a witness must have signed. Keeping this
// as an interface rather than a concrete CBOR call lets tests substitute a
// fake codec that reports arbitrary sizes without constructing real byte
// strings.
type Codec interface {
	// EncodedSize returns the canonical wire size of body in bytes, or an
	// error if body cannot be encoded at all (reported as TxSizeUnavailable,
	// before any rule runs).
	EncodedSize(body TxBody) (int, error)

	// SignMessage returns the bytes a witness's signature must cover for
	// body (R8).
	SignMessage(body TxBody) ([]byte, error)
}

// AnnotatedTx pairs a transaction body with its wire size, computed once by
// Annotate and then read by both R5 (the fee formula) and R7 (the size
// cap) so they can never disagree about how big the transaction is.
type AnnotatedTx struct {
	Body      TxBody
	SizeBytes uint64
}

// Annotate runs the codec's size oracle over body and packages the result
// with it. Any later rule that needs the transaction's size reads
// SizeBytes off the returned value rather than calling the codec again.
func Annotate(body TxBody, codec Codec) (AnnotatedTx, error) {
	size, err := codec.EncodedSize(body)
	if err != nil {
		return AnnotatedTx{}, newVerdict(TxSizeUnavailable, "%v", err)
	}
	return AnnotatedTx{Body: body, SizeBytes: uint64(size)}, nil
}
