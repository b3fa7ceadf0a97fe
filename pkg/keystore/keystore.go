package keystore

import (
	"os"

	"github.com/pkg/errors"

	"github.com/nautilus-labs/price-oracle-go/pkg/signer"
)

// LoadSigner reads a secp256k1 signing key from a file containing
// exactly 32 raw bytes (no envelope, no encoding) and constructs the
// process signer. Any length or scalar validation failure is fatal key
// material: the caller must not start without a valid key.
//
// The intermediate key buffer is zeroed once the signer owns the
// scalar; the key is never serialized out of the process afterwards.
func LoadSigner(path string) (*signer.Signer, error) {
	keyBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read signing key from %s", path)
	}
	defer zero(keyBytes)

	s, err := signer.NewSigner(keyBytes)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid signing key in %s", path)
	}
	return s, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
