// Package derivation turns textual derivation paths into chain codes and
// walks them over sr25519 keypairs.
//
// # Paths
//
// A path is a sequence of junctions. "//name" is a hard junction and
// "/name" a soft one:
//
//	junctions, err := derivation.ParsePath("//polkadot//0/ledger")
//	child, err := derivation.DeriveKeypair(root, junctions)
//
// Soft-only paths can be walked from a public key alone:
//
//	pub, err := derivation.DerivePublic(root.Public, junctions)
//
// # Chain Codes
//
// A segment that parses as a uint64 becomes its 8-byte little-endian
// encoding; any other segment becomes its SCALE string encoding (compact
// length prefix followed by the UTF-8 bytes). Encodings longer than 32 bytes
// are replaced by their BLAKE2b-256 digest, shorter ones are zero padded.
// "Alice" therefore maps to 0x14416c696365 followed by zeros.
//
// # Secret URIs
//
// ParseURI splits "phrase//hard/soft///password" into its three parts. The
// phrase is returned verbatim; interpreting it as a mnemonic or hex seed is
// up to the caller.
package derivation
