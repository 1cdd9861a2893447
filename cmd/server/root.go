package main

import (
	"fmt"
	"os"

	"calproxy/internal/calendly"
	"calproxy/internal/config"
	"calproxy/internal/logger"
	"calproxy/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calproxy",
		Short:         "Proxy that relays browser scheduling requests to the Calendly API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newPingCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the logger and service shared
// by every subcommand.
func bootstrap() (config.Config, *zap.Logger, *service.SchedulingService, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	for _, key := range cfg.MissingCredentials() {
		log.Warn("credential not configured; upstream calls will be rejected", zap.String("key", key))
	}

	client := calendly.New(cfg.BaseURL, cfg.Token, cfg.UpstreamTimeout)
	svc := service.NewSchedulingService(client, cfg, log)
	return cfg, log, svc, nil
}
