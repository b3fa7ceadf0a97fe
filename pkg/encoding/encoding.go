package encoding

import (
	"encoding/binary"
)

/*
Wire format for signed price updates (BCS-style, byte-exact):

  PriceUpdatePayload { price: u64 }
    price: 8 bytes little-endian, no length prefix

  IntentMessage { intent: u8, timestamp_ms: u64, data: PriceUpdatePayload }
    intent:       1 byte
    timestamp_ms: 8 bytes little-endian
    data:         raw payload bytes, concatenated with no separator

Fixed-width fields are concatenated in declared order with no padding,
alignment, or framing delimiters. A verifier must be able to reconstruct
the identical byte sequence from (intent, timestamp_ms, price) alone;
any deviation changes the digest and invalidates the signature.

Total envelope length for the price payload: 1 + 8 + 8 = 17 bytes.
*/

const (
	// IntentScopePersonal is the domain-separation tag for personal
	// message signing. Constant for this protocol version; changing it
	// changes every signature produced over otherwise identical inputs.
	IntentScopePersonal uint8 = 0

	// PricePayloadSize is the encoded size of PriceUpdatePayload.
	PricePayloadSize = 8

	// IntentHeaderSize is the fixed overhead of the intent envelope
	// (1-byte scope + 8-byte timestamp) prepended to any payload.
	IntentHeaderSize = 9
)

// EncodePricePayload serializes a quantized price (USD x 10^6) as its
// 8-byte little-endian BCS encoding. Total for all u64 values.
func EncodePricePayload(price uint64) []byte {
	buf := make([]byte, PricePayloadSize)
	binary.LittleEndian.PutUint64(buf, price)
	return buf
}

// DecodePricePayload is the inverse of EncodePricePayload. It exists for
// verifiers and tests; the signing path never decodes payload bytes.
func DecodePricePayload(payload []byte) (uint64, bool) {
	if len(payload) != PricePayloadSize {
		return 0, false
	}
	return binary.LittleEndian.Uint64(payload), true
}

// EncodeIntentMessage wraps an already-encoded payload with the intent
// scope and millisecond timestamp, producing the exact byte sequence
// that gets hashed and signed. Output length is 9 + len(payload).
func EncodeIntentMessage(scope uint8, timestampMs uint64, payload []byte) []byte {
	buf := make([]byte, 0, IntentHeaderSize+len(payload))
	buf = append(buf, scope)
	buf = binary.LittleEndian.AppendUint64(buf, timestampMs)
	buf = append(buf, payload...)
	return buf
}

// EncodePriceIntentMessage builds the complete 17-byte envelope for a
// price update under the personal intent scope.
func EncodePriceIntentMessage(price uint64, timestampMs uint64) []byte {
	return EncodeIntentMessage(IntentScopePersonal, timestampMs, EncodePricePayload(price))
}
