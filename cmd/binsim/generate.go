package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/binsight/hub/internal/service"
	"github.com/spf13/cobra"
)

var prettyOutput bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write simulated readings to stdout as JSON",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&prettyOutput, "pretty", false, "indent the JSON output")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	w, err := resolveWindow(cfg.Simulation.DefaultRange, time.Now().UTC())
	if err != nil {
		return err
	}

	svc := service.New(newGenerator(cfg), nil, cfg.Simulation.MaxReadings)
	readings, err := svc.GenerateReadings(cmd.Context(), service.ReadingsRequest{
		DeviceID: deviceID,
		Range:    w.rng,
		Start:    w.start,
		End:      w.end,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if prettyOutput {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(readings)
}
