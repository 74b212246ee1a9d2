package main

import (
	"fmt"
	"time"

	"github.com/binsight/hub/internal/publisher"
	"github.com/binsight/hub/internal/simulation"
	"github.com/spf13/cobra"
)

var (
	brokerArg       string
	publishInterval time.Duration
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish simulated readings to an MQTT broker",
	Long: `Generates the readings of a window and publishes each one as a JSON message
to {topic_prefix}/{device}/readings.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&brokerArg, "broker", "", "MQTT broker host:port (default from config)")
	publishCmd.Flags().DurationVar(&publishInterval, "interval", 0, "pause between messages")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	w, err := resolveWindow(cfg.Simulation.DefaultRange, time.Now().UTC())
	if err != nil {
		return err
	}
	if n := simulation.Count(w.start, w.end, w.rng); n > cfg.Simulation.MaxReadings {
		return fmt.Errorf("window yields %d readings, limit is %d", n, cfg.Simulation.MaxReadings)
	}
	if brokerArg != "" {
		cfg.MQTT.Broker = brokerArg
	}

	pub, err := publisher.New(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	gen := newGenerator(cfg)
	sent, err := pub.PublishAll(cmd.Context(), deviceID, gen.Readings(deviceID, w.start, w.end, w.rng), publishInterval)
	fmt.Fprintf(cmd.OutOrStdout(), "Published %d readings to %s\n", sent, publisher.Topic(cfg.MQTT.TopicPrefix, deviceID))
	return err
}
