// Package ss58 encodes sr25519 public keys as SS58 addresses.
//
// An address is base58(prefix || public key || checksum), where the checksum
// is the first two bytes of BLAKE2b-512("SS58PRE" || prefix || public key).
// Network identifiers below 64 take one prefix byte; identifiers up to 16383
// take two.
package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/opd-ai/sr25519/limits"
	"github.com/opd-ai/sr25519/schnorrkel"
)

// DefaultPrefix is the generic Substrate network identifier.
const DefaultPrefix uint16 = 42

const (
	maxSimplePrefix = 63
	maxPrefix       = 16383
	checksumSize    = 2
	publicKeySize   = limits.PublicKeySize
)

var checksumPreimage = []byte("SS58PRE")

var (
	// ErrInvalidAddress indicates a string that is not base58 or has the wrong length.
	ErrInvalidAddress = errors.New("invalid ss58 address")

	// ErrChecksumMismatch indicates a well-formed address with a bad checksum.
	ErrChecksumMismatch = errors.New("ss58 checksum mismatch")

	// ErrInvalidPrefix indicates a network identifier outside 0..16383.
	ErrInvalidPrefix = errors.New("invalid ss58 prefix")
)

// Encode returns the SS58 address of pub on network prefix.
func Encode(pub schnorrkel.PublicKey, prefix uint16) (string, error) {
	head, err := encodePrefix(prefix)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, len(head)+publicKeySize+checksumSize)
	payload = append(payload, head...)
	payload = append(payload, pub[:]...)
	payload = append(payload, checksum(payload)...)
	return base58.Encode(payload), nil
}

// Decode parses an address and returns its public key and network prefix.
// The public key is not checked to be a valid Ristretto point.
func Decode(address string) (schnorrkel.PublicKey, uint16, error) {
	var pub schnorrkel.PublicKey

	data, err := base58.Decode(address)
	if err != nil {
		return pub, 0, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(data) == 0 {
		return pub, 0, fmt.Errorf("%w: empty", ErrInvalidAddress)
	}

	prefix, prefixLen, err := decodePrefix(data)
	if err != nil {
		return pub, 0, err
	}
	if len(data) != prefixLen+publicKeySize+checksumSize {
		return pub, 0, fmt.Errorf("%w: unexpected length %d", ErrInvalidAddress, len(data))
	}

	body := data[:len(data)-checksumSize]
	if !bytes.Equal(checksum(body), data[len(body):]) {
		return pub, 0, ErrChecksumMismatch
	}

	copy(pub[:], body[prefixLen:])
	return pub, prefix, nil
}

// EncodeDefault encodes pub with DefaultPrefix.
func EncodeDefault(pub schnorrkel.PublicKey) string {
	address, _ := Encode(pub, DefaultPrefix)
	return address
}

func encodePrefix(prefix uint16) ([]byte, error) {
	switch {
	case prefix <= maxSimplePrefix:
		return []byte{byte(prefix)}, nil
	case prefix <= maxPrefix:
		first := byte((prefix&0x00fc)>>2) | 0x40
		second := byte(prefix>>8) | byte((prefix&0x0003)<<6)
		return []byte{first, second}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrefix, prefix)
	}
}

func decodePrefix(data []byte) (uint16, int, error) {
	switch {
	case data[0] <= maxSimplePrefix:
		return uint16(data[0]), 1, nil
	case data[0] < 0x80:
		if len(data) < 2 {
			return 0, 0, fmt.Errorf("%w: truncated prefix", ErrInvalidAddress)
		}
		lower := uint16(data[0]&0x3f)<<2 | uint16(data[1]>>6)
		upper := uint16(data[1] & 0x3f)
		return lower | upper<<8, 2, nil
	default:
		return 0, 0, fmt.Errorf("%w: reserved prefix byte 0x%02x", ErrInvalidPrefix, data[0])
	}
}

func checksum(body []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write(checksumPreimage)
	h.Write(body)
	return h.Sum(nil)[:checksumSize]
}
