package derivation

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"github.com/opd-ai/sr25519/limits"
	"github.com/opd-ai/sr25519/schnorrkel"
)

var (
	// ErrInvalidPath indicates a malformed derivation path.
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrHardJunctionOnPublic indicates a hard junction was applied to a public key.
	ErrHardJunctionOnPublic = errors.New("hard junction requires a secret key")
)

// Junction is one derivation step.
type Junction struct {
	Hard      bool
	ChainCode schnorrkel.ChainCode
}

// HardJunction returns a hard junction for a path segment.
func HardJunction(segment string) Junction {
	return Junction{Hard: true, ChainCode: chainCodeFor(segment)}
}

// SoftJunction returns a soft junction for a path segment.
func SoftJunction(segment string) Junction {
	return Junction{ChainCode: chainCodeFor(segment)}
}

// String renders the junction with its chain code, since the segment text
// cannot be recovered from a hashed chain code.
func (j Junction) String() string {
	if j.Hard {
		return "//0x" + j.ChainCode.String()
	}
	return "/0x" + j.ChainCode.String()
}

func chainCodeFor(segment string) schnorrkel.ChainCode {
	var encoded []byte
	if n, err := strconv.ParseUint(segment, 10, 64); err == nil {
		encoded = binary.LittleEndian.AppendUint64(nil, n)
	} else {
		encoded = appendCompactLength(nil, uint64(len(segment)))
		encoded = append(encoded, segment...)
	}

	var cc schnorrkel.ChainCode
	if len(encoded) > limits.ChainCodeSize {
		cc = blake2b.Sum256(encoded)
	} else {
		copy(cc[:], encoded)
	}
	return cc
}

// appendCompactLength appends n in SCALE compact encoding.
func appendCompactLength(dst []byte, n uint64) []byte {
	switch {
	case n < 1<<6:
		return append(dst, byte(n<<2))
	case n < 1<<14:
		return binary.LittleEndian.AppendUint16(dst, uint16(n<<2|0b01))
	case n < 1<<30:
		return binary.LittleEndian.AppendUint32(dst, uint32(n<<2|0b10))
	default:
		size := (bits.Len64(n) + 7) / 8
		dst = append(dst, byte((size-4)<<2|0b11))
		for i := 0; i < size; i++ {
			dst = append(dst, byte(n>>(8*i)))
		}
		return dst
	}
}

// DeriveKeypair applies junctions to kp in order.
func DeriveKeypair(kp *schnorrkel.Keypair, junctions []Junction) (*schnorrkel.Keypair, error) {
	current := kp
	for i, j := range junctions {
		var next *schnorrkel.Keypair
		var err error
		if j.Hard {
			next, _, err = current.DeriveHard(j.ChainCode)
		} else {
			next, _, err = current.DeriveSoft(j.ChainCode)
		}
		if err != nil {
			return nil, fmt.Errorf("junction %d: %w", i, err)
		}
		current = next
	}
	return current, nil
}

// DerivePublic applies soft junctions to a public key. Any hard junction
// fails with ErrHardJunctionOnPublic.
func DerivePublic(pub schnorrkel.PublicKey, junctions []Junction) (schnorrkel.PublicKey, error) {
	current := pub
	for i, j := range junctions {
		if j.Hard {
			return schnorrkel.PublicKey{}, fmt.Errorf("junction %d: %w", i, ErrHardJunctionOnPublic)
		}
		next, _, err := current.DeriveSoft(j.ChainCode)
		if err != nil {
			return schnorrkel.PublicKey{}, fmt.Errorf("junction %d: %w", i, err)
		}
		current = next
	}
	return current, nil
}
