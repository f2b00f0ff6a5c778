package schnorrkel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainCode(t testing.TB, s string) ChainCode {
	t.Helper()
	cc, err := NewChainCode(mustHex(t, s))
	require.NoError(t, err)
	return cc
}

// Chain codes are SCALE-encoded junction names padded to 32 bytes.
const (
	fooChainCode   = "0c666f6f00000000000000000000000000000000000000000000000000000000"
	aliceChainCode = "14416c6963650000000000000000000000000000000000000000000000000000"
	bobChainCode   = "0c426f6200000000000000000000000000000000000000000000000000000000"
)

func TestDeriveKnownVectors(t *testing.T) {
	kp := devKeypair(t)

	tests := []struct {
		name string
		cc   string
		hard bool
		want string
	}{
		{"soft foo", fooChainCode, false, "40b9675df90efa6069ff623b0fdfcf706cd47ca7452a5056c7ad58194d23440a"},
		{"hard Alice", aliceChainCode, true, "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"},
		{"hard Bob", bobChainCode, true, "8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var child *Keypair
			var err error
			if tt.hard {
				child, _, err = kp.DeriveHard(chainCode(t, tt.cc))
			} else {
				child, _, err = kp.DeriveSoft(chainCode(t, tt.cc))
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, child.Public.String())
		})
	}
}

func TestDerivePublicSoftKnownVector(t *testing.T) {
	pk, err := NewPublicKey(mustHex(t, devPublicHex))
	require.NoError(t, err)

	child, _, err := pk.DeriveSoft(chainCode(t, fooChainCode))
	require.NoError(t, err)
	assert.Equal(t, "40b9675df90efa6069ff623b0fdfcf706cd47ca7452a5056c7ad58194d23440a", child.String())
}

func TestSoftDerivationIsLinear(t *testing.T) {
	for i := 0; i < 8; i++ {
		kp := randomKeypair(t)
		var cc ChainCode
		copy(cc[:], kp.Secret.nonce[:])

		secretChild, secretNext, err := kp.DeriveSoft(cc)
		require.NoError(t, err)
		publicChild, publicNext, err := kp.Public.DeriveSoft(cc)
		require.NoError(t, err)

		assert.True(t, secretChild.Public.Equal(publicChild))
		assert.Equal(t, secretNext, publicNext)
		assert.True(t, secretChild.Secret.Public().Equal(secretChild.Public))
	}
}

func TestSoftDerivationDeterministic(t *testing.T) {
	kp := devKeypair(t)
	cc := chainCode(t, fooChainCode)

	a, _, err := kp.DeriveSoft(cc)
	require.NoError(t, err)
	b, _, err := kp.DeriveSoft(cc)
	require.NoError(t, err)

	aBytes, err := a.Bytes()
	require.NoError(t, err)
	bBytes, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, aBytes, bBytes)
}

func TestSoftDerivedNonceDiffersFromParent(t *testing.T) {
	kp := devKeypair(t)
	child, _, err := kp.DeriveSoft(chainCode(t, fooChainCode))
	require.NoError(t, err)
	assert.NotEqual(t, kp.Secret.nonce, child.Secret.nonce)
}

func TestHardDerivationDistinctChainCodes(t *testing.T) {
	kp := devKeypair(t)

	a, nextA, err := kp.DeriveHard(chainCode(t, aliceChainCode))
	require.NoError(t, err)
	b, nextB, err := kp.DeriveHard(chainCode(t, bobChainCode))
	require.NoError(t, err)

	assert.False(t, a.Public.Equal(b.Public))
	assert.NotEqual(t, nextA, nextB)
}

func TestHardAndSoftDiffer(t *testing.T) {
	kp := devKeypair(t)
	cc := chainCode(t, aliceChainCode)

	hard, _, err := kp.DeriveHard(cc)
	require.NoError(t, err)
	soft, _, err := kp.DeriveSoft(cc)
	require.NoError(t, err)

	assert.False(t, hard.Public.Equal(soft.Public))
}

func TestDeriveHardMissingSecret(t *testing.T) {
	kp := NewPublicKeypair(devKeypair(t).Public)
	_, _, err := kp.DeriveHard(chainCode(t, aliceChainCode))
	assert.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestDeriveSoftWatchOnly(t *testing.T) {
	full := devKeypair(t)
	watch := NewPublicKeypair(full.Public)
	cc := chainCode(t, fooChainCode)

	child, _, err := watch.DeriveSoft(cc)
	require.NoError(t, err)
	assert.False(t, child.HasSecret())

	expected, _, err := full.DeriveSoft(cc)
	require.NoError(t, err)
	assert.True(t, child.Public.Equal(expected.Public))
}

func TestDerivePublicSoftInvalidPoint(t *testing.T) {
	var pk PublicKey
	for i := range pk {
		pk[i] = 0xff
	}
	_, _, err := pk.DeriveSoft(ChainCode{})
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestNewChainCodeLength(t *testing.T) {
	_, err := NewChainCode(make([]byte, 16))
	assert.ErrorIs(t, err, ErrInvalidInputLength)

	cc, err := NewChainCode(mustHex(t, fooChainCode))
	require.NoError(t, err)
	assert.Equal(t, fooChainCode, cc.String())
}
