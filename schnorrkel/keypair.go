package schnorrkel

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/gtank/merlin"
	"github.com/gtank/ristretto255"

	"github.com/opd-ai/sr25519/limits"
)

// MiniSecretKey is the 32-byte seed a secret key is expanded from.
type MiniSecretKey [limits.MiniSecretKeySize]byte

// ExpansionMode selects how a MiniSecretKey becomes a SecretKey.
type ExpansionMode uint8

const (
	// ExpansionEd25519 hashes the seed with SHA-512 and clamps the scalar the
	// way Ed25519 does. This is the mode used by Substrate and by every
	// published sr25519 test vector.
	ExpansionEd25519 ExpansionMode = iota

	// ExpansionUniform expands the seed through a Merlin transcript into a
	// uniformly distributed scalar.
	ExpansionUniform
)

// String returns the mode name.
func (m ExpansionMode) String() string {
	switch m {
	case ExpansionEd25519:
		return "ed25519"
	case ExpansionUniform:
		return "uniform"
	default:
		return fmt.Sprintf("ExpansionMode(%d)", uint8(m))
	}
}

// NewMiniSecretKey copies a 32-byte seed.
func NewMiniSecretKey(seed []byte) (MiniSecretKey, error) {
	var msk MiniSecretKey
	if err := limits.ValidateSeed(seed); err != nil {
		return msk, err
	}
	copy(msk[:], seed)
	return msk, nil
}

// GenerateMiniSecretKey reads a fresh seed from rand.
func GenerateMiniSecretKey(rand io.Reader) (MiniSecretKey, error) {
	var msk MiniSecretKey
	if _, err := io.ReadFull(rand, msk[:]); err != nil {
		return msk, fmt.Errorf("failed to read seed: %w", err)
	}
	return msk, nil
}

// Expand expands the seed with the given mode.
func (m *MiniSecretKey) Expand(mode ExpansionMode) (*SecretKey, error) {
	switch mode {
	case ExpansionEd25519:
		return m.ExpandEd25519(), nil
	case ExpansionUniform:
		return m.ExpandUniform(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExpansion, mode)
	}
}

// ExpandEd25519 derives key = clamp(SHA-512(seed)[:32]) / 8 and
// nonce = SHA-512(seed)[32:]. Dividing by the cofactor keeps the scalar
// reduced modulo the Ristretto group order.
func (m *MiniSecretKey) ExpandEd25519() *SecretKey {
	h := sha512.Sum512(m[:])
	defer ZeroBytes(h[:])

	var key [limits.ScalarSize]byte
	defer ZeroBytes(key[:])
	copy(key[:], h[:32])
	key[0] &= 248
	key[31] &= 63
	key[31] |= 64
	divideScalarByCofactor(key[:])

	sk := &SecretKey{key: ristretto255.NewScalar()}
	// A clamped value divided by 8 lies in [2^251, 2^252), below the group
	// order, so the encoding is always canonical.
	if err := sk.key.Decode(key[:]); err != nil {
		panic("schnorrkel: clamped scalar is not canonical")
	}
	copy(sk.nonce[:], h[32:])
	return sk
}

// ExpandUniform derives the secret key from a Merlin transcript.
func (m *MiniSecretKey) ExpandUniform() *SecretKey {
	t := merlin.NewTranscript(expandLabel)
	appendMessage(t, "mini", m[:])

	sk := &SecretKey{key: challengeScalar(t, "sk")}
	nonce := challengeBytes(t, "no", limits.NonceSize)
	copy(sk.nonce[:], nonce)
	ZeroBytes(nonce)
	return sk
}

// ExpandToKeypair expands the seed and computes the matching public key.
func (m *MiniSecretKey) ExpandToKeypair(mode ExpansionMode) (*Keypair, error) {
	sk, err := m.Expand(mode)
	if err != nil {
		return nil, err
	}
	return sk.Keypair(), nil
}

// Wipe zeroes the seed.
func (m *MiniSecretKey) Wipe() {
	ZeroBytes(m[:])
}

// divideScalarByCofactor shifts a little-endian 256-bit integer right by 3.
func divideScalarByCofactor(s []byte) {
	var low byte
	for i := len(s) - 1; i >= 0; i-- {
		r := s[i] & 0x07
		s[i] >>= 3
		s[i] += low
		low = r << 5
	}
}

// SecretKey is a signing scalar plus the nonce seed used to derive
// per-signature witnesses. It is never logged or serialised implicitly.
type SecretKey struct {
	key   *ristretto255.Scalar
	nonce [limits.NonceSize]byte
}

// NewSecretKey decodes a 64-byte secret key. The scalar half must be a
// canonical encoding.
func NewSecretKey(data []byte) (*SecretKey, error) {
	if err := limits.ValidateSecretKey(data); err != nil {
		return nil, err
	}

	sk := &SecretKey{key: ristretto255.NewScalar()}
	if err := sk.key.Decode(data[:limits.ScalarSize]); err != nil {
		return nil, fmt.Errorf("%w: scalar is not canonical", ErrInvalidSecretKey)
	}
	copy(sk.nonce[:], data[limits.ScalarSize:])
	return sk, nil
}

// Bytes returns scalar || nonce. The caller owns the returned slice and
// should wipe it when done.
func (sk *SecretKey) Bytes() []byte {
	out := make([]byte, 0, limits.SecretKeySize)
	out = sk.key.Encode(out)
	return append(out, sk.nonce[:]...)
}

// Public returns key·B.
func (sk *SecretKey) Public() PublicKey {
	var pk PublicKey
	copy(pk[:], ristretto255.NewElement().ScalarBaseMult(sk.key).Encode(nil))
	return pk
}

// Keypair pairs the secret key with its public key.
func (sk *SecretKey) Keypair() *Keypair {
	return &Keypair{Secret: sk, Public: sk.Public()}
}

// Wipe zeroes the scalar and the nonce seed.
func (sk *SecretKey) Wipe() {
	if sk == nil {
		return
	}
	if sk.key != nil {
		sk.key.Zero()
	}
	ZeroBytes(sk.nonce[:])
}

// PublicKey is a compressed Ristretto255 point.
type PublicKey [limits.PublicKeySize]byte

// NewPublicKey decodes a 32-byte public key and checks that it is a valid
// Ristretto255 encoding.
func NewPublicKey(data []byte) (PublicKey, error) {
	var pk PublicKey
	if err := limits.ValidatePublicKey(data); err != nil {
		return pk, err
	}
	copy(pk[:], data)
	if _, err := pk.point(); err != nil {
		return PublicKey{}, err
	}
	return pk, nil
}

func (pk PublicKey) point() (*ristretto255.Element, error) {
	e := ristretto255.NewElement()
	if err := e.Decode(pk[:]); err != nil {
		return nil, fmt.Errorf("%w: not a ristretto255 encoding", ErrInvalidPublicKey)
	}
	return e, nil
}

// Bytes returns a copy of the encoding.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, limits.PublicKeySize)
	copy(out, pk[:])
	return out
}

// Equal reports whether two public keys have the same encoding.
func (pk PublicKey) Equal(other PublicKey) bool {
	return subtle.ConstantTimeCompare(pk[:], other[:]) == 1
}

// String returns the hex encoding.
func (pk PublicKey) String() string {
	return hex.EncodeToString(pk[:])
}

// Keypair is a secret key with its public key. A Keypair with a nil Secret
// holds public material only and can be used for soft public derivation
// and verification, but not for signing or hard derivation.
type Keypair struct {
	Secret *SecretKey
	Public PublicKey
}

// NewKeypair decodes a 96-byte keypair (secret key || public key) and checks
// that the public half matches the secret scalar.
func NewKeypair(data []byte) (*Keypair, error) {
	if err := limits.ValidateKeypair(data); err != nil {
		return nil, err
	}

	sk, err := NewSecretKey(data[:limits.SecretKeySize])
	if err != nil {
		return nil, err
	}
	pk, err := NewPublicKey(data[limits.SecretKeySize:])
	if err != nil {
		sk.Wipe()
		return nil, err
	}
	if !sk.Public().Equal(pk) {
		sk.Wipe()
		NewLogger("NewKeypair").WithFields(SecureFieldHash(pk[:], "public_key")).Debug("keypair halves disagree")
		return nil, ErrKeypairMismatch
	}
	return &Keypair{Secret: sk, Public: pk}, nil
}

// NewPublicKeypair wraps a public key in a watch-only Keypair.
func NewPublicKeypair(pk PublicKey) *Keypair {
	return &Keypair{Public: pk}
}

// HasSecret reports whether the keypair carries a secret key.
func (kp *Keypair) HasSecret() bool {
	return kp != nil && kp.Secret != nil
}

// Bytes returns secret key || public key.
func (kp *Keypair) Bytes() ([]byte, error) {
	if !kp.HasSecret() {
		return nil, ErrMissingSecretKey
	}
	out := kp.Secret.Bytes()
	return append(out, kp.Public[:]...), nil
}

// PublicKey returns the public half.
func (kp *Keypair) PublicKey() PublicKey {
	return kp.Public
}
