package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/suparena/ddbgateway"
	"github.com/suparena/ddbgateway/config"
)

type rootOptions struct {
	configFile string
	envFile    string
	version    bool

	port      int
	region    string
	table     string
	endpoint  string
	scanLimit int32
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{})
}

func newRootCmdWith(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ddbgateway",
		Short:         "Serve a DynamoDB table scan over HTTP.",
		Long:          `Serve GET /testdb, which scans one DynamoDB table and returns the first page as JSON.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				ddbgateway.GetVersionInfo().Print(cmd.OutOrStdout())
				return nil
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := config.NewLogger(cfg, cmd.ErrOrStderr())

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to a YAML config file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "Path to a dotenv file (ignored if missing)")
	flags.BoolVarP(&opts.version, "version", "v", false, "Show version information")
	flags.IntVarP(&opts.port, "port", "p", config.DefaultPort, "HTTP listen port")
	flags.StringVar(&opts.region, "region", config.DefaultRegion, "AWS region of the table")
	flags.StringVar(&opts.table, "table", config.DefaultTableName, "DynamoDB table to scan")
	flags.StringVar(&opts.endpoint, "endpoint", "", "DynamoDB endpoint override, e.g. http://localhost:8000")
	flags.Int32Var(&opts.scanLimit, "scan-limit", 0, "Maximum items evaluated per scan (0 = no limit)")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", config.DefaultLogFormat, "Log format (text, json)")

	return cmd
}

// loadConfig layers explicitly set flags over the file and environment
// sources, then validates the result.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		EnvFile:    opts.envFile,
	})
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = opts.port
	}
	if flags.Changed("region") {
		cfg.Region = opts.region
	}
	if flags.Changed("table") {
		cfg.TableName = opts.table
	}
	if flags.Changed("endpoint") {
		cfg.Endpoint = opts.endpoint
	}
	if flags.Changed("scan-limit") {
		cfg.ScanLimit = opts.scanLimit
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serve(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	srv, err := ddbgateway.NewDynamoDBServer(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("startup failed")
		return err
	}
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.WithError(err).Error("server stopped")
		return err
	}
	return nil
}
