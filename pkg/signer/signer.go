package signer

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/nautilus-labs/price-oracle-go/pkg/encoding"
)

const (
	// KeySize is the required length of a raw secp256k1 private scalar.
	KeySize = 32

	// DigestSize is the length of the SHA-256 digest that gets signed.
	DigestSize = 32

	// SignatureSize is the length of a compact (r || s) signature.
	SignatureSize = 64

	// PublicKeySize is the length of a SEC1-compressed public key.
	PublicKeySize = 33
)

var (
	// ErrInvalidKeyLength is returned when the raw key material is not
	// exactly 32 bytes. Never truncated or padded.
	ErrInvalidKeyLength = errors.New("signing key must be exactly 32 bytes")

	// ErrInvalidKeyValue is returned when the 32 bytes are not a valid
	// scalar on secp256k1 (zero, or >= the curve order).
	ErrInvalidKeyValue = errors.New("signing key is not a valid secp256k1 scalar")
)

// Signer owns the oracle's secp256k1 signing key for the process
// lifetime. It is immutable after construction and safe for concurrent
// use without locking; the key material never leaves the struct.
//
// Signatures are deterministic (RFC 6979): signing identical bytes with
// the same key always yields the same 64-byte compact signature, so the
// output is reproducible by any independent implementation.
type Signer struct {
	privateKey *ecdsa.PrivateKey
	compressed []byte
}

// NewSigner constructs a Signer from exactly 32 raw bytes interpreted
// as a big-endian secp256k1 private scalar.
func NewSigner(keyBytes []byte) (*Signer, error) {
	if len(keyBytes) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(keyBytes))
	}

	privateKey, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyValue, err)
	}

	return &Signer{
		privateKey: privateKey,
		compressed: crypto.CompressPubkey(&privateKey.PublicKey),
	}, nil
}

// Sign produces a deterministic ECDSA signature over a 32-byte digest,
// serialized in compact form: 32-byte big-endian r followed by 32-byte
// big-endian s, no DER wrapping and no recovery byte.
func (s *Signer) Sign(digest []byte) ([]byte, error) {
	if len(digest) != DigestSize {
		return nil, fmt.Errorf("digest must be %d bytes, got %d", DigestSize, len(digest))
	}

	// crypto.Sign returns 65 bytes [r || s || v]; drop the recovery id.
	sig, err := crypto.Sign(digest, s.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}
	return sig[:SignatureSize], nil
}

// SignMessage hashes the message with SHA-256 and signs the digest.
func (s *Signer) SignMessage(message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	return s.Sign(digest[:])
}

// SignPriceUpdate signs the canonical 17-byte intent envelope for a
// quantized price and millisecond timestamp, returning the compact
// signature and the envelope digest it covers.
func (s *Signer) SignPriceUpdate(price uint64, timestampMs uint64) ([]byte, [DigestSize]byte, error) {
	message := encoding.EncodePriceIntentMessage(price, timestampMs)
	digest := sha256.Sum256(message)

	sig, err := s.Sign(digest[:])
	if err != nil {
		return nil, digest, err
	}
	return sig, digest, nil
}

// PublicKey returns the 33-byte SEC1-compressed public key.
func (s *Signer) PublicKey() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, s.compressed)
	return out
}

// PublicKeyHex returns the compressed public key as lowercase hex.
func (s *Signer) PublicKeyHex() string {
	return hex.EncodeToString(s.compressed)
}

// VerifyMessage checks a compact signature against a compressed public
// key and the raw (unhashed) message bytes. Used by verifiers and tests
// to re-check oracle output.
func VerifyMessage(compressedPubKey, message, signature []byte) bool {
	if len(compressedPubKey) != PublicKeySize || len(signature) != SignatureSize {
		return false
	}
	digest := sha256.Sum256(message)
	return crypto.VerifySignature(compressedPubKey, digest[:], signature)
}
