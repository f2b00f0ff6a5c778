package schnorrkel

import (
	"github.com/gtank/merlin"
	"github.com/gtank/ristretto255"
)

// Merlin application labels.
const (
	signingContextLabel = "SigningContext"
	hdkdLabel           = "SchnorrRistrettoHDKD"
	expandLabel         = "ExpandSecretKeys"
)

// appendMessage hands merlin a freshly allocated label on every call.
// merlin appends the length prefix to the label slice, so label buffers
// must never be shared between goroutines. STROBE distinguishes a nil
// buffer from an empty one, so nil messages are sent as empty.
func appendMessage(t *merlin.Transcript, label string, message []byte) {
	if message == nil {
		message = []byte{}
	}
	t.AppendMessage([]byte(label), message)
}

func challengeBytes(t *merlin.Transcript, label string, n int) []byte {
	return t.ExtractBytes([]byte(label), n)
}

// challengeScalar extracts 64 bytes and reduces them modulo the group order.
func challengeScalar(t *merlin.Transcript, label string) *ristretto255.Scalar {
	wide := challengeBytes(t, label, 64)
	defer ZeroBytes(wide)
	return ristretto255.NewScalar().FromUniformBytes(wide)
}

// newHDKDTranscript starts a derivation transcript. The "sign-bytes" slot is
// always empty: junction data travels in the chain code.
func newHDKDTranscript() *merlin.Transcript {
	t := merlin.NewTranscript(hdkdLabel)
	appendMessage(t, "sign-bytes", nil)
	return t
}

// newSigningTranscript builds the transcript shared by signing and
// verification, up to and including the signer's public key.
func newSigningTranscript(context, message []byte, public PublicKey) *merlin.Transcript {
	t := merlin.NewTranscript(signingContextLabel)
	appendMessage(t, "", context)
	appendMessage(t, "sign-bytes", message)
	appendMessage(t, "proto-name", []byte("Schnorr-sig"))
	appendMessage(t, "sign:pk", public[:])
	return t
}
