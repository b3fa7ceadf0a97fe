package encoding

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePricePayload(t *testing.T) {
	tests := []struct {
		name     string
		price    uint64
		expected string
	}{
		{"zero", 0, "0000000000000000"},
		{"one", 1, "0100000000000000"},
		{"sui reference price", 3521000, "e8b9350000000000"},
		{"max u64", ^uint64(0), "ffffffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodePricePayload(tt.price)
			require.Len(t, encoded, PricePayloadSize)
			assert.Equal(t, tt.expected, hex.EncodeToString(encoded))
		})
	}
}

func TestDecodePricePayloadRoundTrip(t *testing.T) {
	for _, price := range []uint64{0, 1, 255, 256, 3521000, 1<<32 - 1, 1 << 32, ^uint64(0)} {
		decoded, ok := DecodePricePayload(EncodePricePayload(price))
		require.True(t, ok)
		assert.Equal(t, price, decoded)
	}
}

func TestDecodePricePayloadWrongLength(t *testing.T) {
	for _, size := range []int{0, 7, 9} {
		_, ok := DecodePricePayload(make([]byte, size))
		assert.False(t, ok, "size %d should not decode", size)
	}
}

func TestEncodeIntentMessageLayout(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	msg := EncodeIntentMessage(3, 0x0102030405060708, payload)

	require.Len(t, msg, IntentHeaderSize+len(payload))
	assert.Equal(t, uint8(3), msg[0])
	// timestamp is little-endian
	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, msg[1:9])
	assert.Equal(t, payload, msg[9:])
}

func TestEncodeIntentMessageEmptyPayload(t *testing.T) {
	msg := EncodeIntentMessage(IntentScopePersonal, 42, nil)
	require.Len(t, msg, IntentHeaderSize)
	assert.Equal(t, IntentScopePersonal, msg[0])
}

// Reference vector: price 3.521000 USD quantized to 3521000, timestamp
// 1700000000000 ms. The envelope bytes and their SHA-256 digest must
// match the values produced by the existing enclave implementations.
func TestEncodePriceIntentMessageReferenceVector(t *testing.T) {
	msg := EncodePriceIntentMessage(3521000, 1700000000000)

	require.Len(t, msg, 17)
	assert.Equal(t, "000068e5cf8b010000e8b9350000000000", hex.EncodeToString(msg))

	digest := sha256.Sum256(msg)
	assert.Equal(t,
		"f8bb766a6f91f52971a303a5ff6e9a2b164c2e706312a41a5cad17ef92f7e14e",
		hex.EncodeToString(digest[:]),
	)
}
