package types

// SignedPrice is a quantized price attested by the oracle's signing
// key. Price is USD scaled by 10^6, TimestampMs is milliseconds since
// the Unix epoch, and Signature is the hex-encoded 64-byte compact
// (r || s) secp256k1 signature over the canonical intent envelope.
//
// A verifier reconstructs scope(1B) || timestamp_ms(8B LE) ||
// price(8B LE), hashes it with SHA-256, and checks the signature
// against the oracle's compressed public key.
type SignedPrice struct {
	Price       uint64 `json:"price"`
	TimestampMs uint64 `json:"timestamp_ms"`
	Signature   string `json:"signature"`
}

// PublicKeyResponse carries the oracle's 33-byte SEC1-compressed
// public key, hex-encoded.
type PublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// HealthResponse is the /health reply.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON error body returned by the HTTP surface.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
