package main

import (
	"fmt"
	"os"

	"payment-ledger/config"
	"payment-ledger/internal/adapter/csvio"
	"payment-ledger/internal/service"
	"payment-ledger/pkg/logger"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "", "path to config file (optional)")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [--config file] <transactions.csv>\n", os.Args[0])
		os.Exit(2)
	}
	inputPath := pflag.Arg(0)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	in, err := os.Open(inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", inputPath).Msg("Failed to open input file")
	}
	defer in.Close()

	ledger := service.NewLedgerService(log)
	replay := service.NewReplayService(ledger, cfg.Replay.Strict, log)

	// Per-record business errors are logged inside the run and never
	// abort it; only stream failures (or strict mode) land here.
	if _, err := replay.Run(csvio.NewReader(in, log)); err != nil {
		log.Fatal().Err(err).Msg("Replay aborted")
	}

	if err := csvio.NewWriter(os.Stdout).WriteSnapshot(ledger.Snapshot()); err != nil {
		log.Fatal().Err(err).Msg("Failed to write snapshot")
	}
}
