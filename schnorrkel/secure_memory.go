package schnorrkel

import (
	"crypto/subtle"
	"errors"
	"runtime"
)

// SecureWipe attempts to securely erase the contents of a byte slice
// containing sensitive data. It returns an error if the byte slice is nil.
func SecureWipe(data []byte) error {
	if data == nil {
		return errors.New("cannot wipe nil data")
	}

	zeros := make([]byte, len(data))
	subtle.ConstantTimeCopy(1, data, zeros)

	runtime.KeepAlive(data)
	return nil
}

// ZeroBytes erases the contents of a byte slice containing sensitive data.
// Nil and empty slices are ignored.
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = SecureWipe(data)
}

// WipeKeypair securely erases the secret half of a Keypair and detaches it.
// The public key is left intact.
func WipeKeypair(kp *Keypair) error {
	if kp == nil {
		return errors.New("cannot wipe nil Keypair")
	}
	if kp.Secret == nil {
		return ErrMissingSecretKey
	}
	kp.Secret.Wipe()
	kp.Secret = nil
	return nil
}
