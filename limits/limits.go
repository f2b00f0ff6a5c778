// Package limits provides centralized size constants for sr25519 values.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MiniSecretKeySize is the length of a seed (Schnorrkel MiniSecretKey).
	MiniSecretKeySize = 32

	// ScalarSize is the length of a canonical little-endian Ristretto255 scalar.
	ScalarSize = 32

	// NonceSize is the length of the nonce seed carried by a secret key.
	NonceSize = 32

	// SecretKeySize is the encoded secret key length: scalar || nonce.
	SecretKeySize = ScalarSize + NonceSize

	// PublicKeySize is the length of a compressed Ristretto255 point.
	PublicKeySize = 32

	// KeypairSize is the encoded keypair length: secret key || public key.
	KeypairSize = SecretKeySize + PublicKeySize

	// ChainCodeSize is the length of a derivation chain code.
	ChainCodeSize = 32

	// SignatureSize is the encoded signature length: R || s.
	SignatureSize = 64
)

// ErrInvalidInputLength indicates a fixed-width argument had the wrong length.
var ErrInvalidInputLength = errors.New("invalid input length")

// ValidateLength checks that data is exactly want bytes long.
// The returned error wraps ErrInvalidInputLength and names the argument.
func ValidateLength(name string, data []byte, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s must be %d bytes, got %d", ErrInvalidInputLength, name, want, len(data))
	}
	return nil
}

// ValidateSeed validates a mini secret key (seed).
func ValidateSeed(seed []byte) error {
	return ValidateLength("seed", seed, MiniSecretKeySize)
}

// ValidateSecretKey validates an encoded secret key.
func ValidateSecretKey(secret []byte) error {
	return ValidateLength("secret key", secret, SecretKeySize)
}

// ValidatePublicKey validates an encoded public key.
func ValidatePublicKey(public []byte) error {
	return ValidateLength("public key", public, PublicKeySize)
}

// ValidateKeypair validates an encoded keypair.
func ValidateKeypair(keypair []byte) error {
	return ValidateLength("keypair", keypair, KeypairSize)
}

// ValidateChainCode validates a derivation chain code.
func ValidateChainCode(cc []byte) error {
	return ValidateLength("chain code", cc, ChainCodeSize)
}

// ValidateSignature validates an encoded signature.
func ValidateSignature(sig []byte) error {
	return ValidateLength("signature", sig, SignatureSize)
}
