package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachdehooge/dewpoint-map/internal/app"
	"github.com/Zachdehooge/dewpoint-map/internal/config"
	"github.com/Zachdehooge/dewpoint-map/internal/fetcher"
	"github.com/Zachdehooge/dewpoint-map/internal/generator"
	"github.com/Zachdehooge/dewpoint-map/internal/logging"
	"github.com/Zachdehooge/dewpoint-map/internal/mapview"
)

// options holds the command line flags.
type options struct {
	outputFile string
	sourcePath string
	verbose    bool
	interval   int
	watchMode  bool
	decade     int
}

// sourceFactory creates the data source once configuration is known.
type sourceFactory func(cfg *config.Config, logger *zap.Logger) app.Source

func loaderSource(cfg *config.Config, logger *zap.Logger) app.Source {
	return fetcher.NewLoader(cfg.FetchTimeout, cfg.BreakerTimeout, logger)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(loaderSource).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(newSource sourceFactory) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dewpoint-map",
		Short: "Generate a proportional symbol map of city dew points",
		Long: `dewpoint-map reads city dew point readings for 1960-2020 from a
GeoJSON file or URL and generates a static HTML map with a decade slider.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			src := newSource(cfg, logger)

			if err := generateMapHTML(cmd, opts, cfg, src, logger); err != nil {
				if ferr := generator.GenerateUnavailableHTML(err, cfg.Output); ferr != nil {
					logger.Error("Failed to write fallback page", zap.Error(ferr))
				}
				return fmt.Errorf("failed to generate map: %w", err)
			}

			if opts.watchMode {
				runWatchMode(cmd, opts, cfg, src, logger)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.sourcePath, "source", "s", fetcher.DefaultSource, "GeoJSON file path or http(s) URL")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().StringVarP(&opts.outputFile, "output", "o", "dewpoints.html", "Output HTML file path")
	rootCmd.Flags().IntVarP(&opts.interval, "interval", "i", 300, "Update interval in seconds (minimum 30)")
	rootCmd.Flags().BoolVar(&opts.watchMode, "watch", false, "Continuously regenerate the map HTML")

	addListCmd(rootCmd, opts, newSource)
	return rootCmd
}

// setup loads configuration, applies any flags the user set, and builds the logger.
func setup(cmd *cobra.Command, opts *options) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = opts.sourcePath
	}
	if flags.Changed("output") {
		cfg.Output = opts.outputFile
	}
	if flags.Changed("interval") {
		cfg.IntervalSeconds = opts.interval
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogLevel, opts.verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// buildState loads the data and derives symbols under the fetch timeout.
func buildState(cmd *cobra.Command, cfg *config.Config, src app.Source, logger *zap.Logger) (*app.State, error) {
	host, err := mapview.New(cfg.MapOptions())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.FetchTimeout)
	defer cancel()

	return app.Build(ctx, host, src, cfg.Source, logger)
}

// generateMapHTML builds the symbols and writes the map page.
func generateMapHTML(cmd *cobra.Command, opts *options, cfg *config.Config, src app.Source, logger *zap.Logger) error {
	if opts.verbose {
		cmd.Println(fmt.Sprintf("Loading dew point data from %s...", cfg.Source))
	}

	state, err := buildState(cmd, cfg, src, logger)
	if err != nil {
		return err
	}

	if opts.verbose {
		cmd.Println(fmt.Sprintf("Generating HTML to %s...", cfg.Output))
	}

	if err := generator.GenerateMapHTML(state, cfg.Output); err != nil {
		return fmt.Errorf("failed to generate HTML: %w", err)
	}

	cmd.Println(fmt.Sprintf("Dew point map saved to %s", cfg.Output))
	return nil
}

// refreshMapHTML is one watch cycle. On failure the previous page stays in
// place; the fallback page is written only when there is no page yet.
func refreshMapHTML(cmd *cobra.Command, opts *options, cfg *config.Config, src app.Source, logger *zap.Logger) error {
	err := generateMapHTML(cmd, opts, cfg, src, logger)
	if err == nil {
		return nil
	}

	logger.Error("Update failed", zap.Error(err))
	cmd.PrintErrln(fmt.Errorf("update failed: %w", err))
	writeFallbackIfMissing(cfg.Output, err, logger)
	return err
}

// runWatchMode regenerates the page every interval until the command's context ends.
func runWatchMode(cmd *cobra.Command, opts *options, cfg *config.Config, src app.Source, logger *zap.Logger) {
	period := cfg.Interval()
	cmd.Println(fmt.Sprintf("Watch mode activated. Updating every %s. Press Ctrl+C to stop.", period))

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = refreshMapHTML(cmd, opts, cfg, src, logger)
		}
	}
}

func writeFallbackIfMissing(output string, reason error, logger *zap.Logger) {
	if _, err := os.Stat(output); !errors.Is(err, os.ErrNotExist) {
		return
	}
	if err := generator.GenerateUnavailableHTML(reason, output); err != nil {
		logger.Error("Failed to write fallback page", zap.Error(err))
	}
}

// addListCmd adds a 'list' subcommand to show each city's symbol for a decade without generating HTML
func addListCmd(rootCmd *cobra.Command, opts *options, newSource sourceFactory) {
	listCmd := &cobra.Command{
		Use:          "list",
		Short:        "List each city's dew point and symbol radius for a decade",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			state, err := buildState(cmd, cfg, newSource(cfg, logger), logger)
			if err != nil {
				return fmt.Errorf("failed to load dew points: %w", err)
			}
			if err := state.SelectDecade(opts.decade); err != nil {
				return err
			}

			attribute := state.Controller.Attribute()
			cmd.Println(fmt.Sprintf("Dew points for %d (baseline %g°F):", opts.decade, state.Scaler.Baseline()))
			for _, s := range state.Renderer.Symbols() {
				value, ok := s.Value(attribute)
				if !ok {
					cmd.Println(fmt.Sprintf("%-24s  no reading", s.City))
					continue
				}
				cmd.Println(fmt.Sprintf("%-24s  %6.2f°F  radius %6.2f", s.City, value, s.Radius))
			}
			return nil
		},
	}
	listCmd.Flags().IntVarP(&opts.decade, "decade", "d", 1960, "Decade to list, 1960-2020")

	rootCmd.AddCommand(listCmd)
}
