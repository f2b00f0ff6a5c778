package schnorrkel

import (
	"testing"
)

// FuzzSignVerify fuzzes signing and verification of arbitrary messages
func FuzzSignVerify(f *testing.F) {
	f.Add([]byte("Hello, World!"), []byte("substrate"))
	f.Add([]byte(""), []byte(""))
	f.Add(make([]byte, 100), []byte("ctx"))

	kp := devKeypair(f)

	f.Fuzz(func(t *testing.T, message, context []byte) {
		// Skip very large inputs to keep iterations fast
		if len(message) > 10000 {
			return
		}

		sig, err := kp.Sign(context, message, nil)
		if err != nil {
			t.Fatalf("Sign() error: %v", err)
		}
		if !kp.Public.Verify(context, message, sig) {
			t.Fatal("signature did not verify")
		}
	})
}

// FuzzVerifyBytes checks that arbitrary encodings never panic
func FuzzVerifyBytes(f *testing.F) {
	f.Add(make([]byte, 64), []byte("msg"), make([]byte, 32))
	f.Add(make([]byte, 63), []byte(""), make([]byte, 31))
	f.Add([]byte{0xff}, []byte{0x00}, []byte{0xff})

	f.Fuzz(func(t *testing.T, sig, message, public []byte) {
		_ = VerifyBytes([]byte(DefaultContext), message, sig, public)
	})
}

// FuzzNewKeypair checks that arbitrary keypair encodings never panic
func FuzzNewKeypair(f *testing.F) {
	f.Add(make([]byte, 96))
	f.Add(make([]byte, 95))

	f.Fuzz(func(t *testing.T, data []byte) {
		kp, err := NewKeypair(data)
		if err != nil {
			return
		}
		// Anything that decodes must satisfy the keypair invariant
		if !kp.Secret.Public().Equal(kp.Public) {
			t.Fatal("decoded keypair violates public == key·B")
		}
	})
}

// FuzzDeriveSoft checks the secret and public soft derivations agree
func FuzzDeriveSoft(f *testing.F) {
	f.Add(make([]byte, 32))
	f.Add([]byte("0123456789abcdef0123456789abcdef"))

	kp := devKeypair(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		cc, err := NewChainCode(data)
		if err != nil {
			return
		}
		child, _, err := kp.DeriveSoft(cc)
		if err != nil {
			t.Fatalf("DeriveSoft() error: %v", err)
		}
		pub, _, err := kp.Public.DeriveSoft(cc)
		if err != nil {
			t.Fatalf("PublicKey.DeriveSoft() error: %v", err)
		}
		if !child.Public.Equal(pub) {
			t.Fatal("secret and public soft derivation disagree")
		}
	})
}
