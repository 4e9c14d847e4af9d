package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/safetynet/alerts/pkg/alerts"
	"github.com/safetynet/alerts/pkg/audit"
	"github.com/safetynet/alerts/pkg/config"
	"github.com/safetynet/alerts/pkg/loader"
	"github.com/safetynet/alerts/pkg/logging"
	"github.com/safetynet/alerts/pkg/model"
	"github.com/safetynet/alerts/pkg/records"
	"github.com/safetynet/alerts/pkg/server"
	"github.com/safetynet/alerts/pkg/server/endpoints"
)

const shutdownTimeout = 10 * time.Second

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the SafetyNet alerts server",
	Long: `Run the SafetyNet alerts server.

The data fixture is loaded once at startup. With --watch, the store is
replaced whenever the fixture file changes on disk.

Flags override the configuration file and SAFETYNET_* environment variables.

Example:
  safetynetctl server
  safetynetctl server --data-file data/safetynet.json --port 9000 --watch`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := serverConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runServer(ctx, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	addServerFlags(serverCmd)
}

func addServerFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("port", "p", "", "server listen port")
	cmd.Flags().StringP("bind-address", "b", "", "server bind address")
	cmd.Flags().StringP("data-file", "d", "", "JSON data fixture to load")
	cmd.Flags().Bool("watch", false, "reload the data fixture when it changes")
}

// serverConfig loads the configuration and applies the flags that were set
// explicitly on the command line.
func serverConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	for flag, attribute := range map[string]string{
		"port":         "port",
		"bind-address": "bind_address",
		"data-file":    "data_file",
		"watch":        "watch_data",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := cfg.SetFlag(attribute, f.Value.String()); err != nil {
			return nil, err
		}
	}

	return cfg, cfg.Validate()
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "safetynet")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	data, err := loader.Load(cfg.DataFile)
	if err != nil {
		return err
	}

	report := loader.Inspect(data, time.Now())
	for _, w := range report.Warnings {
		logger.Warn("data fixture", zap.String("warning", w))
	}
	logger.Info("data fixture loaded",
		zap.String("data_file", cfg.DataFile),
		zap.Int("persons", report.Persons),
		zap.Int("firestations", report.Firestations),
		zap.Int("medicalrecords", report.MedicalRecords),
	)

	rs := records.New(data)
	engine := alerts.NewEngine(rs, alerts.WithLogger(logger.Named("alerts")))

	auditLogger := audit.NewLogger(os.Stdout)
	auditLogger.SetEnabled(cfg.AuditEnabled)

	s := server.NewServer(cfg, server.NewStores(rs, engine), logger, auditLogger)
	endpoints.RegisterAll(s)

	if cfg.WatchData {
		go func() {
			err := loader.Watch(ctx, cfg.DataFile, func(data model.Dataset) {
				rs.Replace(data)
			}, loader.WithWatchLogger(logger.Named("watch")))
			if err != nil {
				logger.Error("unable to watch data fixture", zap.Error(err))
			}
		}()
	}

	errs := make(chan error, 1)
	go func() { errs <- s.Start() }()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errs
}
