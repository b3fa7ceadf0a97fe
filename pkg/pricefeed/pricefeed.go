package pricefeed

import "context"

// Source supplies the raw USD quote the oracle attests. Implementations
// must be safe for concurrent use; each request fetches independently.
type Source interface {
	// Name identifies the upstream source in logs.
	Name() string

	// FetchUSDPrice returns the current USD price for the configured
	// asset. The context bounds the whole fetch including retries the
	// implementation may choose to do internally.
	FetchUSDPrice(ctx context.Context) (float64, error)
}
