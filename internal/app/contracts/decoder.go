package contracts

// EnvelopeDecoder turns an opaque response blob into plain JSON bytes. The
// registry wraps some payloads in an encoded envelope; this layer treats the
// unwrap as a black box so cipher changes never touch the transport.
type EnvelopeDecoder interface {
	Decode(body []byte) ([]byte, error)
}
