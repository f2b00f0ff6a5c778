// Package limits provides the fixed-width sizes of every sr25519 wire value
// and the length checks applied to them before any arithmetic happens.
//
// # Size Table
//
// All keys and signatures travel as fixed-width byte sequences:
//
//   - MiniSecretKeySize (32 bytes): the seed expanded into a secret key.
//   - SecretKeySize (64 bytes): the signing scalar followed by the nonce seed.
//   - PublicKeySize (32 bytes): a compressed Ristretto255 point.
//   - KeypairSize (96 bytes): secret key followed by public key.
//   - ChainCodeSize (32 bytes): derivation entropy for one junction.
//   - SignatureSize (64 bytes): commitment point R followed by the scalar s.
//
// # Validation Functions
//
// Each validation function rejects wrong-length input with an error that
// wraps ErrInvalidInputLength and names the offending argument:
//
//	if err := limits.ValidateSeed(seed); err != nil {
//	    // errors.Is(err, limits.ErrInvalidInputLength) == true
//	}
//
// For values without a dedicated helper, use ValidateLength directly:
//
//	err := limits.ValidateLength("chain code", cc, limits.ChainCodeSize)
//
// Inputs are never truncated or padded. A 31-byte seed is an error, not a
// seed with an implicit trailing zero.
package limits
