// Package schnorrkel implements Schnorr signatures over the Ristretto255
// group (sr25519) together with the Schnorrkel hierarchical key derivation
// scheme.
//
// Group arithmetic is provided by github.com/gtank/ristretto255 and every
// hash-to-scalar step runs through a Merlin transcript
// (github.com/gtank/merlin), so encodings interoperate with other sr25519
// implementations byte for byte.
//
// # Core Types
//
//   - [MiniSecretKey]: 32-byte seed
//   - [SecretKey]: signing scalar plus nonce seed (64 bytes encoded)
//   - [PublicKey]: compressed Ristretto255 point (32 bytes)
//   - [Keypair]: secret and public key (96 bytes encoded)
//   - [ChainCode]: 32-byte derivation entropy
//   - [Signature]: R || s with the Schnorrkel marker bit (64 bytes)
//
// # Key Generation
//
// Seeds expand deterministically into keypairs:
//
//	msk, err := schnorrkel.NewMiniSecretKey(seed)
//	if err != nil {
//	    return err
//	}
//	kp, err := msk.ExpandToKeypair(schnorrkel.ExpansionEd25519)
//
// # Derivation
//
// Hard derivation binds the parent secret scalar and cannot be replayed from
// public data. Soft derivation adds a blinding scalar computed from the
// parent public key and chain code, so it can be replayed on the public side:
//
//	child, _, err := kp.DeriveSoft(cc)
//	pub, _, err := kp.Public.DeriveSoft(cc)
//	// child.Public == pub
//
// # Signing and Verification
//
//	sig, err := kp.Sign([]byte(schnorrkel.DefaultContext), msg, rand.Reader)
//	ok := kp.Public.Verify([]byte(schnorrkel.DefaultContext), msg, sig)
//
// Passing a nil reader to Sign makes the signature a deterministic function
// of the key, context and message. Verify returns false for every malformed
// input; it never reports an error.
//
// # Thread Safety
//
// All operations are pure functions of their inputs. Values may be shared
// between goroutines as long as nobody calls Wipe concurrently.
package schnorrkel
