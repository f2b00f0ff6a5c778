package schnorrkel

import (
	"errors"

	"github.com/opd-ai/sr25519/limits"
)

var (
	// ErrInvalidInputLength indicates a fixed-width argument had the wrong length.
	ErrInvalidInputLength = limits.ErrInvalidInputLength

	// ErrMissingSecretKey indicates derivation or signing was attempted with
	// public material only.
	ErrMissingSecretKey = errors.New("missing secret key")

	// ErrInvalidPublicKey indicates bytes that are not a valid Ristretto255 encoding.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSecretKey indicates a secret key whose scalar is not canonical.
	ErrInvalidSecretKey = errors.New("invalid secret key")

	// ErrKeypairMismatch indicates a keypair whose public half does not match its secret.
	ErrKeypairMismatch = errors.New("public key does not match secret key")

	// ErrInvalidSignature indicates a malformed signature encoding.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrUnknownExpansion indicates an unsupported mini secret key expansion mode.
	ErrUnknownExpansion = errors.New("unknown expansion mode")
)
