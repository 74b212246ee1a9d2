package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/binsight/hub/internal/config"
	"github.com/binsight/hub/internal/models"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	nuts "github.com/vaudience/go-nuts"
)

const (
	qos                 = 0
	disconnectQuiesceMs = 250
)

// Client is the part of mqtt.Client the publisher needs
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// Publisher pushes simulated readings to an MQTT broker
type Publisher struct {
	client      Client
	topicPrefix string
}

// New connects to the configured broker
func New(cfg config.MQTTConfig) (*Publisher, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required")
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL(cfg.Broker))
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(cfg.ConnectTimeout)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}
	nuts.L.Infof("[Publisher] Connected to MQTT broker %s", cfg.Broker)

	return NewWithClient(client, cfg.TopicPrefix), nil
}

// NewWithClient wraps an already connected client
func NewWithClient(client Client, topicPrefix string) *Publisher {
	return &Publisher{client: client, topicPrefix: strings.TrimSuffix(topicPrefix, "/")}
}

// Topic returns the readings topic of a device
func Topic(prefix, deviceID string) string {
	return fmt.Sprintf("%s/%s/readings", strings.TrimSuffix(prefix, "/"), deviceID)
}

// Publish sends one reading as a JSON message
func (p *Publisher) Publish(ctx context.Context, deviceID string, reading models.Reading) error {
	payload, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("encoding reading: %w", err)
	}

	token := p.client.Publish(Topic(p.topicPrefix, deviceID), qos, false, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing reading: %w", err)
	}
	return nil
}

// PublishAll sends every reading of the sequence, optionally pausing
// between messages. It returns the number of readings published.
func (p *Publisher) PublishAll(ctx context.Context, deviceID string, readings iter.Seq[models.Reading], interval time.Duration) (int, error) {
	sent := 0
	for reading := range readings {
		if sent > 0 && interval > 0 {
			select {
			case <-time.After(interval):
			case <-ctx.Done():
				return sent, ctx.Err()
			}
		}
		if err := p.Publish(ctx, deviceID, reading); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil {
		p.client.Disconnect(disconnectQuiesceMs)
	}
}

func brokerURL(broker string) string {
	if strings.Contains(broker, "://") {
		return broker
	}
	return "tcp://" + broker
}
