package oracle

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/nautilus-labs/price-oracle-go/pkg/pricefeed"
	"github.com/nautilus-labs/price-oracle-go/pkg/signer"
	"github.com/nautilus-labs/price-oracle-go/pkg/types"
)

// PriceScale converts USD prices to fixed-point integers with 6
// decimal digits of precision.
const PriceScale = 1_000_000

// ErrPriceOutOfRange is returned when a quote cannot be represented as
// a non-negative u64 after scaling. Out-of-range values fail loudly
// instead of wrapping.
var ErrPriceOutOfRange = errors.New("price cannot be quantized to u64")

// QuantizePrice converts a USD price to its u64 fixed-point form by
// multiplying by 10^6 and truncating toward zero.
//
// The float multiply happens before truncation, so results can differ
// from exact decimal scaling by one unit in the last place. This
// matches the deployed enclave implementations byte-for-byte and must
// not be "fixed": existing signed data depends on it.
func QuantizePrice(priceUSD float64) (uint64, error) {
	scaled := priceUSD * PriceScale
	if math.IsNaN(scaled) || scaled < 0 || scaled >= math.MaxUint64 {
		return 0, fmt.Errorf("%w: %v USD", ErrPriceOutOfRange, priceUSD)
	}
	return uint64(scaled), nil
}

// ServiceConfig holds the dependencies for the oracle service.
type ServiceConfig struct {
	Source pricefeed.Source
	Signer *signer.Signer
	Logger *zap.Logger
}

// Service produces signed price attestations. The signing key is
// injected at construction and immutable afterwards; concurrent
// requests share it without coordination, each capturing its own
// timestamp and computing its own signature.
type Service struct {
	source pricefeed.Source
	signer *signer.Signer
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates an oracle service with dependency injection.
func NewService(config *ServiceConfig) (*Service, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.Source == nil {
		return nil, fmt.Errorf("price source is required")
	}
	if config.Signer == nil {
		return nil, fmt.Errorf("signer is required")
	}
	if config.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &Service{
		source: config.Source,
		signer: config.Signer,
		logger: config.Logger,
		now:    time.Now,
	}, nil
}

// SignedQuote fetches the current quote, quantizes it, stamps it with
// wall-clock milliseconds, and signs the canonical intent envelope.
func (s *Service) SignedQuote(ctx context.Context) (*types.SignedPrice, error) {
	priceUSD, err := s.source.FetchUSDPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price from %s: %w", s.source.Name(), err)
	}

	price, err := QuantizePrice(priceUSD)
	if err != nil {
		return nil, err
	}

	timestampMs := uint64(s.now().UnixMilli())

	sig, _, err := s.signer.SignPriceUpdate(price, timestampMs)
	if err != nil {
		return nil, fmt.Errorf("failed to sign price update: %w", err)
	}

	s.logger.Info("Signed price update",
		zap.String("source", s.source.Name()),
		zap.Float64("price_usd", priceUSD),
		zap.Uint64("price", price),
		zap.Uint64("timestamp_ms", timestampMs),
	)

	return &types.SignedPrice{
		Price:       price,
		TimestampMs: timestampMs,
		Signature:   hex.EncodeToString(sig),
	}, nil
}

// PublicKeyHex exposes the signer's compressed public key for callers
// that verify attestations.
func (s *Service) PublicKeyHex() string {
	return s.signer.PublicKeyHex()
}
