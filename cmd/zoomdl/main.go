package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/np-at/zoomdl/internal/auth"
	"github.com/np-at/zoomdl/internal/config"
	"github.com/np-at/zoomdl/internal/download"
	"github.com/np-at/zoomdl/internal/ledger"
	"github.com/np-at/zoomdl/internal/logger"
	"github.com/np-at/zoomdl/internal/sweep"
	"github.com/np-at/zoomdl/internal/version"
	"github.com/np-at/zoomdl/internal/zoomapi"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zoomdl",
		Short:         "Bulk-export cloud meeting recordings for every account user",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Full())
		},
	})
	return root
}

func run(ctx context.Context) error {
	log := logger.New("zoomdl")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("no API authentication information available, quitting")
		return err
	}

	led, err := ledger.Open(cfg.LedgerPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open completion ledger")
		return err
	}
	defer func() { _ = led.Close() }()
	log.Info().Int("completed", led.Len()).Str("ledger", cfg.LedgerPath).Msg("completion ledger loaded")

	issuer := auth.NewIssuer(cfg.APIKey, cfg.APISecret, cfg.TokenTTL)
	api := zoomapi.New(issuer, cfg.BaseURL, log,
		zoomapi.WithPageSize(cfg.PageSize),
		zoomapi.WithHTTPTimeout(cfg.HTTPTimeout),
	)
	engine := download.NewEngine(api, cfg.DownloadDir, log)

	if err := sweep.NewRunner(api, led, engine, log).Run(ctx); err != nil {
		log.Error().Stack().Err(err).Msg("sweep failed")
		return err
	}
	log.Info().Msg("sweep complete")
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
