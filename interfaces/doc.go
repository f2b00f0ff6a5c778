// Package interfaces defines the abstractions shared between the sr25519
// engine and the components plugged into it.
//
// # Core Interfaces
//
// [Signer] produces signatures with a key it holds, and [Verifier] checks
// signatures against public keys. Both speak raw fixed-width byte
// encodings so that callers never depend on the curve library:
//
//	signer, err := sr25519.NewSigner(engine, keypair)
//	var s interfaces.Signer = signer
//	sig, err := s.Sign(message)
//	ok := engine.Verify(sig, message, s.PublicKey())
//
// [OperationObserver] receives one notification per engine operation with
// its outcome and latency. The metrics package provides a Prometheus
// implementation:
//
//	opts := sr25519.NewOptions()
//	opts.Observer = metrics.NewCollector(prometheus.DefaultRegisterer)
//
// Observers are called synchronously from the goroutine running the
// operation and must be safe for concurrent use.
package interfaces
