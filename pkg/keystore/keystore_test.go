package keystore

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nautilus-labs/price-oracle-go/pkg/signer"
)

func writeKeyFile(t *testing.T, contents []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signing.key")
	require.NoError(t, os.WriteFile(path, contents, 0o600))
	return path
}

func TestLoadSigner(t *testing.T) {
	keyBytes, err := hex.DecodeString("c85ef7d79691fe79573b1a7064c19c1a9819ebdbd1faaab1a8ec92344438aaf4")
	require.NoError(t, err)

	s, err := LoadSigner(writeKeyFile(t, keyBytes))
	require.NoError(t, err)
	assert.Equal(t,
		"030947751e3022ecf3016be03ec77ab0ce3c2662b4843898cb068d74f698ccc8ad",
		s.PublicKeyHex(),
	)
}

func TestLoadSignerWrongLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"empty file", 0},
		{"31 bytes", 31},
		{"33 bytes", 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSigner(writeKeyFile(t, make([]byte, tt.length)))
			require.Error(t, err)
			assert.ErrorIs(t, err, signer.ErrInvalidKeyLength)
		})
	}
}

func TestLoadSignerInvalidScalar(t *testing.T) {
	_, err := LoadSigner(writeKeyFile(t, make([]byte, 32)))
	require.Error(t, err)
	assert.ErrorIs(t, err, signer.ErrInvalidKeyValue)
}

func TestLoadSignerMissingFile(t *testing.T) {
	_, err := LoadSigner(filepath.Join(t.TempDir(), "missing.key"))
	assert.Error(t, err)
}
