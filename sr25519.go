package sr25519

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/sr25519/interfaces"
	"github.com/opd-ai/sr25519/limits"
	"github.com/opd-ai/sr25519/schnorrkel"
)

// Sizes of the byte encodings accepted and produced by the engine.
const (
	SeedSize      = limits.MiniSecretKeySize
	KeypairSize   = limits.KeypairSize
	PublicKeySize = limits.PublicKeySize
	ChainCodeSize = limits.ChainCodeSize
	SignatureSize = limits.SignatureSize
)

// Options contains engine configuration.
type Options struct {
	// Context is the signing context bound into every signature.
	Context []byte

	// Rand supplies the hedging entropy mixed into signing nonces.
	// A nil Rand makes signatures deterministic.
	Rand io.Reader

	// Expansion selects how KeypairFromSeed expands a seed. Hard derivation
	// always uses ExpansionEd25519.
	Expansion schnorrkel.ExpansionMode

	// Observer, when set, is notified after each of the six operations.
	Observer interfaces.OperationObserver

	// TimeProvider measures operation latency. Nil means wall clock.
	TimeProvider TimeProvider
}

// NewOptions creates default options: the Substrate signing context,
// crypto/rand entropy and Ed25519-mode seed expansion.
func NewOptions() *Options {
	return &Options{
		Context:   []byte(schnorrkel.DefaultContext),
		Rand:      rand.Reader,
		Expansion: schnorrkel.ExpansionEd25519,
	}
}

// Engine performs sr25519 operations over byte encodings.
// It holds immutable configuration only and is safe for concurrent use.
type Engine struct {
	context   []byte
	rand      io.Reader
	expansion schnorrkel.ExpansionMode
	observer  interfaces.OperationObserver
	clock     TimeProvider
}

// New creates an engine. A nil options uses NewOptions.
func New(options *Options) *Engine {
	if options == nil {
		options = NewOptions()
	}
	clock := options.TimeProvider
	if clock == nil {
		clock = DefaultTimeProvider{}
	}
	return &Engine{
		context:   bytes.Clone(options.Context),
		rand:      options.Rand,
		expansion: options.Expansion,
		observer:  options.Observer,
		clock:     clock,
	}
}

// Context returns a copy of the signing context.
func (e *Engine) Context() []byte {
	return bytes.Clone(e.context)
}

func outcomeOf(err error) interfaces.Outcome {
	if err != nil {
		return interfaces.OutcomeError
	}
	return interfaces.OutcomeOK
}

// track reports a finished operation. It is deferred with the start time
// captured at entry and a pointer to the named error result.
func (e *Engine) track(op interfaces.Operation, start time.Time, err *error) {
	e.report(op, outcomeOf(*err), e.clock.Since(start), *err)
}

func (e *Engine) report(op interfaces.Operation, outcome interfaces.Outcome, elapsed time.Duration, err error) {
	if e.observer != nil {
		e.observer.ObserveOperation(op, outcome, elapsed)
	}

	fields := logrus.Fields{
		"function": string(op),
		"outcome":  string(outcome),
		"elapsed":  elapsed,
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	logrus.WithFields(fields).Debug("sr25519 operation completed")
}

// decodeKeypair parses a 96-byte keypair. A bare public key is reported as a
// missing secret rather than a length error.
func decodeKeypair(data []byte) (*schnorrkel.Keypair, error) {
	if len(data) == limits.PublicKeySize {
		return nil, fmt.Errorf("%w: got a %d-byte public key, want a %d-byte keypair",
			ErrMissingSecretKey, len(data), limits.KeypairSize)
	}
	return schnorrkel.NewKeypair(data)
}

func encodeAndWipe(kp *schnorrkel.Keypair) ([]byte, error) {
	defer kp.Secret.Wipe()
	return kp.Bytes()
}

// KeypairFromSeed expands a 32-byte seed into a 96-byte keypair.
func (e *Engine) KeypairFromSeed(seed []byte) (_ []byte, err error) {
	defer e.track(interfaces.OpKeypairFromSeed, e.clock.Now(), &err)

	msk, err := schnorrkel.NewMiniSecretKey(seed)
	if err != nil {
		return nil, err
	}
	defer msk.Wipe()

	kp, err := msk.ExpandToKeypair(e.expansion)
	if err != nil {
		return nil, err
	}
	return encodeAndWipe(kp)
}

// DeriveKeypairHard derives a hardened child keypair.
func (e *Engine) DeriveKeypairHard(keypair, chainCode []byte) (_ []byte, err error) {
	defer e.track(interfaces.OpDeriveKeypairHard, e.clock.Now(), &err)

	cc, err := schnorrkel.NewChainCode(chainCode)
	if err != nil {
		return nil, err
	}
	kp, err := decodeKeypair(keypair)
	if err != nil {
		return nil, err
	}
	defer kp.Secret.Wipe()

	child, _, err := kp.DeriveHard(cc)
	if err != nil {
		return nil, err
	}
	return encodeAndWipe(child)
}

// DeriveKeypairSoft derives a soft child keypair whose public key can also
// be computed with DerivePublicSoft.
func (e *Engine) DeriveKeypairSoft(keypair, chainCode []byte) (_ []byte, err error) {
	defer e.track(interfaces.OpDeriveKeypairSoft, e.clock.Now(), &err)

	cc, err := schnorrkel.NewChainCode(chainCode)
	if err != nil {
		return nil, err
	}
	kp, err := decodeKeypair(keypair)
	if err != nil {
		return nil, err
	}
	defer kp.Secret.Wipe()

	child, _, err := kp.DeriveSoft(cc)
	if err != nil {
		return nil, err
	}
	return encodeAndWipe(child)
}

// DerivePublicSoft derives a soft child public key from a public key alone.
func (e *Engine) DerivePublicSoft(publicKey, chainCode []byte) (_ []byte, err error) {
	defer e.track(interfaces.OpDerivePublicSoft, e.clock.Now(), &err)

	if err := limits.ValidatePublicKey(publicKey); err != nil {
		return nil, err
	}
	cc, err := schnorrkel.NewChainCode(chainCode)
	if err != nil {
		return nil, err
	}
	pk, err := schnorrkel.NewPublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	child, _, err := pk.DeriveSoft(cc)
	if err != nil {
		return nil, err
	}
	return child.Bytes(), nil
}

// Sign signs message with a 96-byte keypair.
func (e *Engine) Sign(keypair, message []byte) (_ []byte, err error) {
	defer e.track(interfaces.OpSign, e.clock.Now(), &err)

	kp, err := decodeKeypair(keypair)
	if err != nil {
		return nil, err
	}
	defer kp.Secret.Wipe()

	return e.signWith(kp, message)
}

func (e *Engine) signWith(kp *schnorrkel.Keypair, message []byte) ([]byte, error) {
	sig, err := kp.Sign(e.context, message, e.rand)
	if err != nil {
		return nil, err
	}
	return sig.Bytes(), nil
}

// Verify reports whether signature is valid for message under publicKey.
// Malformed input of any kind yields false.
func (e *Engine) Verify(signature, message, publicKey []byte) bool {
	start := e.clock.Now()
	ok := schnorrkel.VerifyBytes(e.context, message, signature, publicKey)

	outcome := interfaces.OutcomeInvalid
	if ok {
		outcome = interfaces.OutcomeValid
	}
	e.report(interfaces.OpVerify, outcome, e.clock.Since(start), nil)
	return ok
}

// GenerateKeypair creates a keypair from a fresh random seed. It draws from
// the engine's Rand, or crypto/rand when the engine is deterministic.
func (e *Engine) GenerateKeypair() ([]byte, error) {
	source := e.rand
	if source == nil {
		source = rand.Reader
	}
	msk, err := schnorrkel.GenerateMiniSecretKey(source)
	if err != nil {
		return nil, err
	}
	defer msk.Wipe()
	return e.KeypairFromSeed(msk[:])
}

// PublicKeyOf returns the public half of a 96-byte keypair after checking
// that both halves agree.
func PublicKeyOf(keypair []byte) ([]byte, error) {
	kp, err := decodeKeypair(keypair)
	if err != nil {
		return nil, err
	}
	defer kp.Secret.Wipe()
	return kp.Public.Bytes(), nil
}

var _ interfaces.Verifier = (*Engine)(nil)

var defaultEngine = New(nil)

// KeypairFromSeed expands a seed with the default engine.
func KeypairFromSeed(seed []byte) ([]byte, error) {
	return defaultEngine.KeypairFromSeed(seed)
}

// DeriveKeypairHard derives a hardened child with the default engine.
func DeriveKeypairHard(keypair, chainCode []byte) ([]byte, error) {
	return defaultEngine.DeriveKeypairHard(keypair, chainCode)
}

// DeriveKeypairSoft derives a soft child with the default engine.
func DeriveKeypairSoft(keypair, chainCode []byte) ([]byte, error) {
	return defaultEngine.DeriveKeypairSoft(keypair, chainCode)
}

// DerivePublicSoft derives a soft child public key with the default engine.
func DerivePublicSoft(publicKey, chainCode []byte) ([]byte, error) {
	return defaultEngine.DerivePublicSoft(publicKey, chainCode)
}

// Sign signs under the "substrate" context with hedged nonces.
func Sign(keypair, message []byte) ([]byte, error) {
	return defaultEngine.Sign(keypair, message)
}

// Verify checks a signature under the "substrate" context.
func Verify(signature, message, publicKey []byte) bool {
	return defaultEngine.Verify(signature, message, publicKey)
}

// GenerateKeypair creates a random keypair with the default engine.
func GenerateKeypair() ([]byte, error) {
	return defaultEngine.GenerateKeypair()
}
