package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/enerdev/turbine-parts/internal/models"
)

// DefaultTopic matches one telemetry message per turbine:
// turbines/<serial>/telemetry.
const DefaultTopic = "turbines/+/telemetry"

// Applier applies a counter reading to the tracked document. The HTTP
// API implements it, so broker and HTTP traffic share one writer lock.
type Applier interface {
	ApplyTelemetry(ctx context.Context, reading models.OperatingTelemetry) (models.Turbine, error)
}

// Subscriber consumes turbine operating telemetry from an MQTT broker
// and feeds it into the tracking core.
type Subscriber struct {
	client  mqtt.Client
	applier Applier
	topic   string
}

// NewSubscriber creates a subscriber for the given broker URL.
func NewSubscriber(brokerURL, clientID string, applier Applier) *Subscriber {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)

	return &Subscriber{
		client:  mqtt.NewClient(opts),
		applier: applier,
		topic:   DefaultTopic,
	}
}

// Start connects to the broker and subscribes to the telemetry topic.
func (s *Subscriber) Start() error {
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	if token := s.client.Subscribe(s.topic, 1, s.handleMessage); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", s.topic, token.Error())
	}
	log.WithField("topic", s.topic).Info("Subscribed to turbine telemetry")
	return nil
}

// Stop disconnects from the broker.
func (s *Subscriber) Stop() {
	s.client.Disconnect(250)
}

func (s *Subscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var reading models.OperatingTelemetry
	if err := json.Unmarshal(msg.Payload(), &reading); err != nil {
		log.WithField("topic", msg.Topic()).WithError(err).Warn("Dropped malformed telemetry message")
		return
	}

	turbine, err := s.applier.ApplyTelemetry(context.Background(), reading)
	if err != nil {
		log.WithFields(log.Fields{
			"topic":   msg.Topic(),
			"turbine": reading.TurbineSerialNumber,
		}).WithError(err).Warn("Failed to apply telemetry")
		return
	}

	log.WithFields(log.Fields{
		"turbine": turbine.SerialNumber,
		"hours":   turbine.CurrentTotalHours,
		"starts":  turbine.CurrentTotalStarts,
	}).Debug("Applied telemetry reading")
}
