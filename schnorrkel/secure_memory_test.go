package schnorrkel

import (
	"testing"
)

func TestSecureWipe(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := SecureWipe(data); err != nil {
		t.Fatalf("SecureWipe failed: %v", err)
	}
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d not wiped: %x", i, b)
		}
	}

	if err := SecureWipe(nil); err == nil {
		t.Error("SecureWipe(nil) should return an error")
	}

	// ZeroBytes tolerates nil
	ZeroBytes(nil)
}

func TestWipeKeypair(t *testing.T) {
	kp := devKeypair(t)
	secret := kp.Secret
	public := kp.Public

	if err := WipeKeypair(kp); err != nil {
		t.Fatalf("WipeKeypair failed: %v", err)
	}
	if kp.Secret != nil {
		t.Error("WipeKeypair should detach the secret key")
	}
	if !kp.Public.Equal(public) {
		t.Error("WipeKeypair should leave the public key intact")
	}

	for i, b := range secret.Bytes() {
		if b != 0 {
			t.Fatalf("secret byte %d not wiped: %x", i, b)
		}
	}

	if err := WipeKeypair(kp); err != ErrMissingSecretKey {
		t.Errorf("second WipeKeypair error = %v, want ErrMissingSecretKey", err)
	}
	if err := WipeKeypair(nil); err == nil {
		t.Error("WipeKeypair(nil) should return an error")
	}
}

func TestMiniSecretKeyWipe(t *testing.T) {
	msk := MiniSecretKey{1, 2, 3}
	msk.Wipe()
	if msk != (MiniSecretKey{}) {
		t.Error("MiniSecretKey.Wipe left data behind")
	}
}
