package derivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		hard  []bool
		codes []string
	}{
		{"empty", "", nil, nil},
		{"single hard", "//Alice", []bool{true}, []string{"Alice"}},
		{"single soft", "/foo", []bool{false}, []string{"foo"}},
		{"mixed", "//polkadot/0//ledger", []bool{true, false, true}, []string{"polkadot", "0", "ledger"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			junctions, err := ParsePath(tt.path)
			require.NoError(t, err)
			require.Len(t, junctions, len(tt.hard))
			for i, j := range junctions {
				assert.Equal(t, tt.hard[i], j.Hard)
				assert.Equal(t, chainCodeFor(tt.codes[i]), j.ChainCode)
			}
		})
	}
}

func TestParsePathInvalid(t *testing.T) {
	for _, path := range []string{"Alice", "/", "//", "/foo/", "///pw", "/foo//"} {
		t.Run(path, func(t *testing.T) {
			_, err := ParsePath(path)
			assert.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		phrase      string
		junctions   int
		password    string
		hasPassword bool
	}{
		{"phrase only", "bottom drive obey", "bottom drive obey", 0, "", false},
		{"path only", "//Alice", "", 1, "", false},
		{"phrase and path", "0xabcd//Alice/foo", "0xabcd", 2, "", false},
		{"password", "seed//Alice///secret", "seed", 1, "secret", true},
		{"empty password", "seed///", "seed", 0, "", true},
		{"password with slashes", "seed///a/b//c", "seed", 0, "a/b//c", true},
		{"empty", "", "", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := ParseURI(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.phrase, uri.Phrase)
			assert.Len(t, uri.Path, tt.junctions)
			assert.Equal(t, tt.password, uri.Password)
			assert.Equal(t, tt.hasPassword, uri.HasPassword)
		})
	}
}

func TestParseURIInvalidPath(t *testing.T) {
	_, err := ParseURI("seed//Alice//")
	assert.ErrorIs(t, err, ErrInvalidPath)
}
