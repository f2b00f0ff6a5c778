package schnorrkel

import (
	"encoding/hex"

	"github.com/gtank/merlin"
	"github.com/gtank/ristretto255"

	"github.com/opd-ai/sr25519/limits"
)

// ChainCode is opaque derivation entropy mixed into HDKD transcripts.
type ChainCode [limits.ChainCodeSize]byte

// NewChainCode copies a 32-byte chain code.
func NewChainCode(data []byte) (ChainCode, error) {
	var cc ChainCode
	if err := limits.ValidateChainCode(data); err != nil {
		return cc, err
	}
	copy(cc[:], data)
	return cc, nil
}

// String returns the hex encoding.
func (cc ChainCode) String() string {
	return hex.EncodeToString(cc[:])
}

// HardDeriveMiniSecretKey derives a child seed and chain code from the
// secret scalar. Only the scalar is bound; the nonce seed is not part of
// the transcript. The result cannot be computed from public data.
func (sk *SecretKey) HardDeriveMiniSecretKey(cc ChainCode) (MiniSecretKey, ChainCode) {
	t := newHDKDTranscript()
	appendMessage(t, "chain-code", cc[:])

	key := sk.key.Encode(make([]byte, 0, limits.ScalarSize))
	appendMessage(t, "secret-key", key)
	ZeroBytes(key)

	var msk MiniSecretKey
	seed := challengeBytes(t, "HDKD-hard", limits.MiniSecretKeySize)
	copy(msk[:], seed)
	ZeroBytes(seed)

	var next ChainCode
	copy(next[:], challengeBytes(t, "HDKD-chaincode", limits.ChainCodeSize))
	return msk, next
}

// DeriveHard derives a hardened child keypair. The child seed is expanded
// in Ed25519 mode regardless of how the parent was expanded.
func (kp *Keypair) DeriveHard(cc ChainCode) (*Keypair, ChainCode, error) {
	if !kp.HasSecret() {
		return nil, ChainCode{}, ErrMissingSecretKey
	}

	msk, next := kp.Secret.HardDeriveMiniSecretKey(cc)
	defer msk.Wipe()
	return msk.ExpandEd25519().Keypair(), next, nil
}

// deriveScalarAndChainCode computes the blinding scalar b shared by the
// secret and public sides of soft derivation. It reads only public data.
func (pk PublicKey) deriveScalarAndChainCode(t *merlin.Transcript, cc ChainCode) (*ristretto255.Scalar, ChainCode) {
	appendMessage(t, "chain-code", cc[:])
	appendMessage(t, "public-key", pk[:])

	b := challengeScalar(t, "HDKD-scalar")

	var next ChainCode
	copy(next[:], challengeBytes(t, "HDKD-chaincode", limits.ChainCodeSize))
	return b, next
}

// DeriveSoft computes parent + b·B. Soft derivation is linear, so the result
// equals the public half of the matching Keypair.DeriveSoft.
func (pk PublicKey) DeriveSoft(cc ChainCode) (PublicKey, ChainCode, error) {
	parent, err := pk.point()
	if err != nil {
		return PublicKey{}, ChainCode{}, err
	}

	b, next := pk.deriveScalarAndChainCode(newHDKDTranscript(), cc)
	child := ristretto255.NewElement().Add(parent, ristretto255.NewElement().ScalarBaseMult(b))

	var out PublicKey
	copy(out[:], child.Encode(nil))
	return out, next, nil
}

// DeriveSoft computes key + b, where b depends only on the public key and
// chain code. The child nonce seed is extracted from the same transcript
// after the parent nonce and secret have been fed to it as witnesses, which
// keeps it independent of b and of the child chain code.
func (sk *SecretKey) DeriveSoft(cc ChainCode) (*SecretKey, ChainCode) {
	t := newHDKDTranscript()
	b, next := sk.Public().deriveScalarAndChainCode(t, cc)

	secret := sk.Bytes()
	appendMessage(t, "HDKD-nonce", sk.nonce[:])
	appendMessage(t, "HDKD-nonce", secret)
	ZeroBytes(secret)

	child := &SecretKey{key: ristretto255.NewScalar().Add(sk.key, b)}
	nonce := challengeBytes(t, "HDKD-nonce", limits.NonceSize)
	copy(child.nonce[:], nonce)
	ZeroBytes(nonce)
	return child, next
}

// DeriveSoft derives a soft child keypair. For a watch-only keypair only
// the public half is derived and the child is watch-only as well.
func (kp *Keypair) DeriveSoft(cc ChainCode) (*Keypair, ChainCode, error) {
	if !kp.HasSecret() {
		pub, next, err := kp.Public.DeriveSoft(cc)
		if err != nil {
			return nil, ChainCode{}, err
		}
		return NewPublicKeypair(pub), next, nil
	}

	sk, next := kp.Secret.DeriveSoft(cc)
	return sk.Keypair(), next, nil
}
