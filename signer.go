package sr25519

import (
	"github.com/opd-ai/sr25519/interfaces"
	"github.com/opd-ai/sr25519/schnorrkel"
)

// KeypairSigner holds a decoded keypair and signs through an engine.
type KeypairSigner struct {
	engine  *Engine
	keypair *schnorrkel.Keypair
}

// NewSigner decodes a 96-byte keypair once for repeated signing.
// A nil engine uses the package defaults.
func NewSigner(engine *Engine, keypair []byte) (*KeypairSigner, error) {
	if engine == nil {
		engine = defaultEngine
	}
	kp, err := decodeKeypair(keypair)
	if err != nil {
		return nil, err
	}
	return &KeypairSigner{engine: engine, keypair: kp}, nil
}

// Sign implements interfaces.Signer.
func (s *KeypairSigner) Sign(message []byte) ([]byte, error) {
	start := s.engine.clock.Now()
	sig, err := s.engine.signWith(s.keypair, message)
	s.engine.report(interfaces.OpSign, outcomeOf(err), s.engine.clock.Since(start), err)
	return sig, err
}

// PublicKey implements interfaces.Signer.
func (s *KeypairSigner) PublicKey() []byte {
	return s.keypair.Public.Bytes()
}

// Wipe zeroes the held secret key. Sign fails afterwards.
func (s *KeypairSigner) Wipe() error {
	return schnorrkel.WipeKeypair(s.keypair)
}

var _ interfaces.Signer = (*KeypairSigner)(nil)

