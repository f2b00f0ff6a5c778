package sr25519

import (
	"testing"
)

// BenchmarkKeypairFromSeed measures seed expansion
func BenchmarkKeypairFromSeed(b *testing.B) {
	seed := mustHex(b, devSeedHex)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := KeypairFromSeed(seed); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDeriveKeypairHard measures hard derivation including decoding
func BenchmarkDeriveKeypairHard(b *testing.B) {
	kp := devKeypair(b)
	cc := mustHex(b, fooChainCode)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DeriveKeypairHard(kp, cc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDerivePublicSoft measures public-side soft derivation
func BenchmarkDerivePublicSoft(b *testing.B) {
	pub := devKeypair(b)[64:]
	cc := mustHex(b, fooChainCode)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DerivePublicSoft(pub, cc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSign measures the byte-level sign path
func BenchmarkSign(b *testing.B) {
	kp := devKeypair(b)
	msg := []byte("benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sign(kp, msg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSignerSign measures signing with a pre-decoded keypair
func BenchmarkSignerSign(b *testing.B) {
	signer, err := NewSigner(nil, devKeypair(b))
	if err != nil {
		b.Fatal(err)
	}
	msg := []byte("benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := signer.Sign(msg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkVerify measures signature verification
func BenchmarkVerify(b *testing.B) {
	kp := devKeypair(b)
	msg := []byte("benchmark message")
	sig, err := Sign(kp, msg)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Verify(sig, msg, kp[64:]) {
			b.Fatal("verification failed")
		}
	}
}
