// Package mnemonic derives sr25519 mini secret keys from BIP-39 phrases the
// way Substrate does: the PBKDF2 input is the phrase entropy, not the
// phrase text, so seeds differ from standard BIP-39 wallets.
package mnemonic

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"

	"github.com/opd-ai/sr25519/schnorrkel"
)

// DevPhrase is the well-known development phrase used by Substrate chains.
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

const (
	pbkdf2Rounds   = 2048
	pbkdf2KeySize  = 64
	saltPrefix     = "mnemonic"
	minEntropySize = 16
	maxEntropySize = 32
)

var (
	// ErrInvalidMnemonic indicates a phrase with unknown words, the wrong word
	// count or a bad checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidEntropy indicates entropy outside 16..32 bytes or not a multiple of 4.
	ErrInvalidEntropy = errors.New("invalid entropy")
)

// MiniSecretFromPhrase converts a phrase and optional password into a mini
// secret key.
func MiniSecretFromPhrase(phrase, password string) (schnorrkel.MiniSecretKey, error) {
	entropy, err := bip39.EntropyFromMnemonic(normalize(phrase))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "MiniSecretFromPhrase",
			"error":    err.Error(),
		}).Debug("Rejected mnemonic")
		return schnorrkel.MiniSecretKey{}, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	defer schnorrkel.ZeroBytes(entropy)

	return MiniSecretFromEntropy(entropy, password)
}

// MiniSecretFromEntropy is the Substrate seed function over raw entropy.
func MiniSecretFromEntropy(entropy []byte, password string) (schnorrkel.MiniSecretKey, error) {
	var msk schnorrkel.MiniSecretKey
	if len(entropy) < minEntropySize || len(entropy) > maxEntropySize || len(entropy)%4 != 0 {
		return msk, fmt.Errorf("%w: %d bytes", ErrInvalidEntropy, len(entropy))
	}

	seed := pbkdf2.Key(entropy, []byte(saltPrefix+password), pbkdf2Rounds, pbkdf2KeySize, sha512.New)
	defer schnorrkel.ZeroBytes(seed)

	copy(msk[:], seed[:len(msk)])
	return msk, nil
}

// Generate returns a fresh phrase of 12, 15, 18, 21 or 24 words.
func Generate(words int) (string, error) {
	switch words {
	case 12, 15, 18, 21, 24:
	default:
		return "", fmt.Errorf("%w: unsupported word count %d", ErrInvalidEntropy, words)
	}

	entropy, err := bip39.NewEntropy(words * 32 / 3)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer schnorrkel.ZeroBytes(entropy)

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to encode mnemonic: %w", err)
	}
	return phrase, nil
}

// Validate reports whether phrase is a well-formed BIP-39 mnemonic.
func Validate(phrase string) bool {
	return bip39.IsMnemonicValid(normalize(phrase))
}

func normalize(phrase string) string {
	return strings.Join(strings.Fields(phrase), " ")
}
