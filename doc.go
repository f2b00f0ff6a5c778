// Package sr25519 implements Schnorrkel signatures over Ristretto255 as used
// by Substrate-based blockchains.
//
// The package is a byte-oriented facade over the typed [schnorrkel] core.
// Keys, chain codes and signatures travel as fixed-width byte slices with
// the same layout as the Rust schnorrkel crate, so values can be exchanged
// with other sr25519 implementations unchanged.
//
// # Getting Started
//
// Expand a 32-byte seed into a keypair and sign a message:
//
//	keypair, err := sr25519.KeypairFromSeed(seed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := sr25519.Sign(keypair, []byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pub := keypair[64:]
//	ok := sr25519.Verify(sig, []byte("hello"), pub)
//
// # Core Types
//
// All encodings are plain byte slices:
//
//   - seed: 32 bytes
//   - keypair: 96 bytes, secret scalar || nonce seed || public key
//   - public key: 32 bytes, compressed Ristretto255 point
//   - chain code: 32 bytes of derivation entropy
//   - signature: 64 bytes, R || s with the Schnorrkel marker bit set
//
// # Configuration
//
// The package-level functions use the Substrate signing context and hedged
// nonces. Use an [Engine] for anything else:
//
//	opts := sr25519.NewOptions()
//	opts.Context = []byte("my-app")
//	opts.Rand = nil // deterministic signatures
//	engine := sr25519.New(opts)
//
// # Key Derivation
//
// Hard derivation needs the parent secret key. Soft derivation can be
// replayed from the parent public key:
//
//	child, err := sr25519.DeriveKeypairSoft(keypair, chainCode)
//	childPub, err := sr25519.DerivePublicSoft(keypair[64:], chainCode)
//	// bytes.Equal(child[64:], childPub) == true
//
// Textual paths and secret URIs are handled by the derivation and mnemonic
// packages, and tied together by [KeypairFromURI]:
//
//	alice, err := sr25519.KeypairFromURI("//Alice")
//
// # Observability
//
// Every operation is logged at debug level through logrus with its name,
// outcome and latency. Secret material is never logged. Set
// Options.Observer to receive the same events, for example through the
// Prometheus collector in the metrics package.
//
// # Thread Safety
//
// An Engine holds immutable configuration and may be shared between
// goroutines. The package-level functions share one default Engine.
package sr25519
