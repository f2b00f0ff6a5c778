package sr25519

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/opd-ai/sr25519/derivation"
	"github.com/opd-ai/sr25519/mnemonic"
	"github.com/opd-ai/sr25519/schnorrkel"
)

// KeypairFromURI builds a keypair from a secret URI such as
// "phrase//hard/soft///password". The phrase is a BIP-39 mnemonic or a
// 0x-prefixed hex seed; an empty phrase means mnemonic.DevPhrase, so
// "//Alice" yields the well-known development account. The password only
// applies to mnemonics.
func (e *Engine) KeypairFromURI(uri string) ([]byte, error) {
	parsed, err := derivation.ParseURI(uri)
	if err != nil {
		return nil, err
	}

	msk, err := miniSecretFromPhrase(parsed)
	if err != nil {
		return nil, err
	}
	defer msk.Wipe()

	root, err := msk.ExpandToKeypair(e.expansion)
	if err != nil {
		return nil, err
	}
	defer root.Secret.Wipe()

	child, err := derivation.DeriveKeypair(root, parsed.Path)
	if err != nil {
		return nil, err
	}
	return encodeAndWipe(child)
}

func miniSecretFromPhrase(uri *derivation.URI) (schnorrkel.MiniSecretKey, error) {
	phrase := uri.Phrase
	if phrase == "" {
		phrase = mnemonic.DevPhrase
	}

	if hexSeed, ok := strings.CutPrefix(phrase, "0x"); ok {
		seed, err := hex.DecodeString(hexSeed)
		if err != nil {
			return schnorrkel.MiniSecretKey{}, fmt.Errorf("%w: hex seed: %v", ErrInvalidMnemonic, err)
		}
		defer schnorrkel.ZeroBytes(seed)
		return schnorrkel.NewMiniSecretKey(seed)
	}

	return mnemonic.MiniSecretFromPhrase(phrase, uri.Password)
}

// KeypairFromURI builds a keypair from a secret URI with the default engine.
func KeypairFromURI(uri string) ([]byte, error) {
	return defaultEngine.KeypairFromURI(uri)
}
