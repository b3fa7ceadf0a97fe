package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/nautilus-labs/price-oracle-go/pkg/config"
	"github.com/nautilus-labs/price-oracle-go/pkg/keystore"
	"github.com/nautilus-labs/price-oracle-go/pkg/logger"
	"github.com/nautilus-labs/price-oracle-go/pkg/oracle"
	"github.com/nautilus-labs/price-oracle-go/pkg/pricefeed"
	"github.com/nautilus-labs/price-oracle-go/pkg/server"
)

func main() {
	app := &cli.App{
		Name:  "oracle-server",
		Usage: "Attestable price oracle server",
		Description: `A price oracle that fetches spot quotes and signs them with a
secp256k1 key so on-chain verifiers can confirm provenance.

Each /price response carries a deterministic (RFC 6979) compact ECDSA
signature over the canonical intent envelope
scope(1B) || timestamp_ms(8B LE) || price(8B LE), where price is USD
scaled by 10^6. The compressed public key is served at /public-key.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key-file",
				Aliases:  []string{"k"},
				Usage:    "Path to the 32-byte raw secp256k1 signing key",
				EnvVars:  []string{config.EnvOracleKeyPath},
				Required: true,
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{config.EnvOraclePort},
			},
			&cli.StringFlag{
				Name:    "coin-id",
				Value:   config.DefaultCoinID,
				Usage:   "CoinGecko asset id to quote",
				EnvVars: []string{config.EnvOracleCoinID},
			},
			&cli.StringFlag{
				Name:    "vs-currency",
				Value:   config.DefaultVsCurrency,
				Usage:   "Quote currency",
				EnvVars: []string{config.EnvOracleVsCurrency},
			},
			&cli.StringFlag{
				Name:    "price-api-url",
				Usage:   "Override the price API base URL (defaults to the public CoinGecko API)",
				EnvVars: []string{config.EnvOraclePriceAPI},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvOracleVerbose},
			},
		},
		Action: runOracleServer,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func runOracleServer(c *cli.Context) error {
	cfg := &config.OracleServerConfig{
		KeyPath:         c.String("key-file"),
		Port:            c.Int("port"),
		CoinID:          c.String("coin-id"),
		VsCurrency:      c.String("vs-currency"),
		PriceAPIBaseURL: c.String("price-api-url"),
		Verbose:         c.Bool("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Verbose})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	// Load the signing key once; the process must not start without it.
	sgn, err := keystore.LoadSigner(cfg.KeyPath)
	if err != nil {
		return fmt.Errorf("failed to load signing key: %w", err)
	}
	l.Info("Signing key loaded",
		zap.String("key_path", cfg.KeyPath),
		zap.String("public_key", sgn.PublicKeyHex()),
	)

	source, err := pricefeed.NewCoinGeckoClient(&pricefeed.CoinGeckoConfig{
		BaseURL:    cfg.PriceAPIBaseURL,
		CoinID:     cfg.CoinID,
		VsCurrency: cfg.VsCurrency,
		Timeout:    cfg.FetchTimeout,
		Logger:     l,
	})
	if err != nil {
		return fmt.Errorf("failed to create price source: %w", err)
	}

	svc, err := oracle.NewService(&oracle.ServiceConfig{
		Source: source,
		Signer: sgn,
		Logger: l,
	})
	if err != nil {
		return fmt.Errorf("failed to create oracle service: %w", err)
	}

	srv := server.NewServer(svc, l, cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server cleanly: %w", err)
	}
	return <-errCh
}
