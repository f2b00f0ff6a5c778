package interfaces

// Signer signs messages with a key it owns.
type Signer interface {
	// Sign returns a 64-byte signature over message
	Sign(message []byte) ([]byte, error)

	// PublicKey returns the 32-byte public key matching the signing key
	PublicKey() []byte
}

// Verifier checks signatures. Malformed input is reported as false.
type Verifier interface {
	Verify(signature, message, publicKey []byte) bool
}
