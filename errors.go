package sr25519

import (
	"github.com/opd-ai/sr25519/derivation"
	"github.com/opd-ai/sr25519/mnemonic"
	"github.com/opd-ai/sr25519/schnorrkel"
)

// Errors returned by the engine. All of them are comparable with errors.Is.
var (
	ErrInvalidInputLength   = schnorrkel.ErrInvalidInputLength
	ErrMissingSecretKey     = schnorrkel.ErrMissingSecretKey
	ErrInvalidPublicKey     = schnorrkel.ErrInvalidPublicKey
	ErrInvalidSecretKey     = schnorrkel.ErrInvalidSecretKey
	ErrKeypairMismatch      = schnorrkel.ErrKeypairMismatch
	ErrUnknownExpansion     = schnorrkel.ErrUnknownExpansion
	ErrInvalidPath          = derivation.ErrInvalidPath
	ErrHardJunctionOnPublic = derivation.ErrHardJunctionOnPublic
	ErrInvalidMnemonic      = mnemonic.ErrInvalidMnemonic
)
