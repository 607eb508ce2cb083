package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mileserickson/vader-sentiment-demo/config"
	"github.com/mileserickson/vader-sentiment-demo/sentiment"
	"github.com/mileserickson/vader-sentiment-demo/vader"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger

	buildLogger func(zap.Config) (*zap.Logger, error)
}

func newApp() *app {
	return &app{
		buildLogger: func(cfg zap.Config) (*zap.Logger, error) {
			return cfg.Build()
		},
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vader-sentiment-demo",
		Short: "Score phrases with VADER and chart their sentiment",
		Long: `Scores short phrases with the VADER lexicon and rule based sentiment
analyzer, colors every phrase by its negative (red), positive (green) and
neutral (blue) proportions and draws the compound scores as a horizontal
bar chart.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log encoding: json or console (default from config)")

	rootCmd.AddCommand(a.scoreCmd(), a.plotCmd(), a.demoCmd())

	return rootCmd
}

// init loads the configuration and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	zapCfg := zap.NewProductionConfig()
	zapCfg.Encoding = cfg.Logging.Format
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	zapCfg.Level = level

	a.logger, err = a.buildLogger(zapCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.Int("workers", cfg.Workers),
		zap.Strings("lexicons", cfg.LexiconFiles()),
	)

	return nil
}

// scoreTable scores phrases with the configured analyzer.
func (a *app) scoreTable(ctx context.Context, phrases []string) (*sentiment.Table, error) {
	sia, err := vader.New(a.cfg.LexiconFiles()...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize analyzer: %w", err)
	}
	scorer := sentiment.NewScorer(sia, sentiment.WithLogger(a.logger))

	if a.cfg.Workers > 1 {
		return sentiment.BuildTableConcurrent(ctx, scorer, phrases, a.cfg.Workers)
	}

	return sentiment.BuildTable(scorer, phrases), nil
}

// execute runs cmd and flushes the logger, whether the command failed or
// not.
func (a *app) execute(ctx context.Context, cmd *cobra.Command) error {
	defer func() {
		if a.logger != nil {
			_ = a.logger.Sync()
		}
	}()

	return cmd.ExecuteContext(ctx)
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()
	if err := a.execute(ctx, a.rootCmd()); err != nil {
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
