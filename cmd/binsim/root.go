package main

import (
	"fmt"
	"time"

	"github.com/binsight/hub/internal/config"
	"github.com/binsight/hub/internal/simulation"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	deviceID string
	rangeArg string
	startArg string
	endArg   string
	seed     uint64
)

var rootCmd = &cobra.Command{
	Use:   "binsim",
	Short: "Generate simulated smart-bin sensor readings",
	Long: `binsim produces the same synthetic waste-bin readings the hub serves over HTTP.
Readings can be written to stdout as JSON or published to an MQTT broker.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&deviceID, "device", "", "device id to simulate (required)")
	rootCmd.PersistentFlags().StringVar(&rangeArg, "range", "", "resolution: 1h, 24h, 7d or 30d (default from config)")
	rootCmd.PersistentFlags().StringVar(&startArg, "start", "", "window start, RFC3339 (default end minus the range window)")
	rootCmd.PersistentFlags().StringVar(&endArg, "end", "", "window end, RFC3339 (default now)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for reproducible output (0 = random)")
}

// window is a resolved generation request
type window struct {
	rng        simulation.Range
	start, end time.Time
}

func resolveWindow(defaultRange string, now time.Time) (window, error) {
	if deviceID == "" {
		return window{}, fmt.Errorf("--device is required")
	}

	w := window{rng: simulation.Range(defaultRange), end: now}
	if rangeArg != "" {
		w.rng = simulation.Range(rangeArg)
	}
	if !w.rng.Valid() {
		return window{}, fmt.Errorf("invalid range %q", w.rng)
	}

	if endArg != "" {
		end, err := time.Parse(time.RFC3339, endArg)
		if err != nil {
			return window{}, fmt.Errorf("parsing --end: %w", err)
		}
		w.end = end
	}
	w.start = w.end.Add(-w.rng.Window())
	if startArg != "" {
		start, err := time.Parse(time.RFC3339, startArg)
		if err != nil {
			return window{}, fmt.Errorf("parsing --start: %w", err)
		}
		w.start = start
	}
	return w, nil
}

func loadConfig() (*config.Config, error) {
	return config.LoadFrom(cfgFile)
}

func newGenerator(cfg *config.Config) *simulation.Generator {
	opts := []simulation.Option{simulation.WithImageBaseURL(cfg.Simulation.ImageBaseURL)}
	if seed != 0 {
		opts = append(opts, simulation.WithSource(simulation.NewSeededSource(seed)))
	}
	return simulation.New(opts...)
}
