package schnorrkel

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"

	"github.com/opd-ai/sr25519/limits"
)

// DefaultContext is the signing context used by Substrate-based chains.
const DefaultContext = "substrate"

// witnessEntropySize is the number of random bytes mixed into a signing witness.
const witnessEntropySize = 32

// markerBit flags an encoding as a Schnorrkel signature (bit 255 of s).
const markerBit = 0x80

// Signature is R || s with the Schnorrkel marker bit set in the last byte.
type Signature [limits.SignatureSize]byte

// NewSignature decodes and validates a 64-byte signature: the marker bit must
// be set and s must be a canonical scalar once the marker is cleared.
func NewSignature(data []byte) (Signature, error) {
	var sig Signature
	if err := limits.ValidateSignature(data); err != nil {
		return sig, err
	}
	copy(sig[:], data)
	if _, err := sig.scalar(); err != nil {
		return Signature{}, err
	}
	return sig, nil
}

// scalar returns s with the marker bit removed.
func (sig Signature) scalar() (*ristretto255.Scalar, error) {
	if sig[limits.SignatureSize-1]&markerBit == 0 {
		return nil, fmt.Errorf("%w: not marked as schnorrkel", ErrInvalidSignature)
	}

	var upper [limits.ScalarSize]byte
	copy(upper[:], sig[limits.ScalarSize:])
	upper[limits.ScalarSize-1] &^= markerBit

	s := ristretto255.NewScalar()
	if err := s.Decode(upper[:]); err != nil {
		return nil, fmt.Errorf("%w: s is not canonical", ErrInvalidSignature)
	}
	return s, nil
}

// Bytes returns a copy of the encoding.
func (sig Signature) Bytes() []byte {
	out := make([]byte, limits.SignatureSize)
	copy(out, sig[:])
	return out
}

// String returns the hex encoding.
func (sig Signature) String() string {
	return hex.EncodeToString(sig[:])
}

// witnessScalar derives the commitment nonce r. The witness transcript has
// the same prefix as the signing transcript and additionally absorbs the
// secret nonce seed and, when rand is non-nil, fresh entropy. With a nil rand
// the nonce is a deterministic function of key, context and message.
func (sk *SecretKey) witnessScalar(context, message []byte, public PublicKey, rand io.Reader) (*ristretto255.Scalar, error) {
	w := newSigningTranscript(context, message, public)
	appendMessage(w, "signing", sk.nonce[:])

	if rand != nil {
		var entropy [witnessEntropySize]byte
		defer ZeroBytes(entropy[:])
		if _, err := io.ReadFull(rand, entropy[:]); err != nil {
			return nil, fmt.Errorf("failed to read signing randomness: %w", err)
		}
		appendMessage(w, "signing-rng", entropy[:])
	}

	return challengeScalar(w, "signing"), nil
}

// Sign produces a Schnorr signature over the Ristretto group:
// R = r·B, k = H(context, message, public, R), s = k·key + r.
// public must be the public key of sk; it is bound into the challenge.
func (sk *SecretKey) Sign(context, message []byte, public PublicKey, rand io.Reader) (Signature, error) {
	r, err := sk.witnessScalar(context, message, public, rand)
	if err != nil {
		return Signature{}, err
	}
	defer r.Zero()

	R := ristretto255.NewElement().ScalarBaseMult(r).Encode(nil)

	t := newSigningTranscript(context, message, public)
	appendMessage(t, "sign:R", R)
	k := challengeScalar(t, "sign:c")

	s := ristretto255.NewScalar().Multiply(k, sk.key)
	s.Add(s, r)

	var sig Signature
	copy(sig[:limits.ScalarSize], R)
	copy(sig[limits.ScalarSize:], s.Encode(nil))
	sig[limits.SignatureSize-1] |= markerBit
	return sig, nil
}

// Sign signs message under context with the keypair's secret key.
func (kp *Keypair) Sign(context, message []byte, rand io.Reader) (Signature, error) {
	if !kp.HasSecret() {
		return Signature{}, ErrMissingSecretKey
	}
	return kp.Secret.Sign(context, message, kp.Public, rand)
}

// Verify reports whether sig is a valid signature of message under context.
// Malformed keys or signatures never verify; no error is surfaced.
func (pk PublicKey) Verify(context, message []byte, sig Signature) bool {
	A, err := pk.point()
	if err != nil {
		return false
	}
	s, err := sig.scalar()
	if err != nil {
		return false
	}

	t := newSigningTranscript(context, message, pk)
	appendMessage(t, "sign:R", sig[:limits.ScalarSize])
	k := challengeScalar(t, "sign:c")

	// R' = s·B - k·A must encode to exactly the R bytes of the signature.
	kA := ristretto255.NewElement().ScalarMult(k, A)
	sB := ristretto255.NewElement().ScalarBaseMult(s)
	R := ristretto255.NewElement().Subtract(sB, kA).Encode(nil)

	return subtle.ConstantTimeCompare(R, sig[:limits.ScalarSize]) == 1
}

// VerifyBytes is Verify over raw encodings. Wrong-length or undecodable
// inputs return false.
func VerifyBytes(context, message, signature, public []byte) bool {
	if len(signature) != limits.SignatureSize || len(public) != limits.PublicKeySize {
		return false
	}

	var sig Signature
	copy(sig[:], signature)
	var pk PublicKey
	copy(pk[:], public)
	return pk.Verify(context, message, sig)
}
