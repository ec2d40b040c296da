package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/enerdev/turbine-parts/internal/models"
)

// TurbineState tracks one simulated turbine's cumulative counters.
type TurbineState struct {
	SerialNumber string
	Hours        float64
	Starts       int
	Running      bool
}

var frameTypes = []string{"7FA", "9HA", "GE 1.5sle", "SGT-800", "LM6000"}

func newFleet(count int) []*TurbineState {
	fleet := make([]*TurbineState, 0, count)
	for i := 0; i < count; i++ {
		fleet = append(fleet, &TurbineState{
			SerialNumber: fmt.Sprintf("T-SIM-%03d", i+1),
			Hours:        float64(rand.Intn(60000)) + rand.Float64(),
			Starts:       rand.Intn(2000),
			Running:      true,
		})
	}
	return fleet
}

// step advances a turbine by one tick. Running turbines accumulate
// hours; stopped turbines occasionally restart, which counts a start.
func step(s *TurbineState, tickSec float64) {
	if s.Running {
		s.Hours += tickSec / 3600.0
		if rand.Float64() < 0.02 {
			s.Running = false
		}
		return
	}
	if rand.Float64() < 0.3 {
		s.Running = true
		s.Starts++
	}
}

func publish(client mqtt.Client, s *TurbineState) {
	reading := models.OperatingTelemetry{
		TurbineSerialNumber: s.SerialNumber,
		Timestamp:           time.Now().UTC(),
		Hours:               s.Hours,
		Starts:              s.Starts,
	}
	payload, err := json.Marshal(reading)
	if err != nil {
		log.WithError(err).Error("Failed to marshal telemetry")
		return
	}

	topic := fmt.Sprintf("turbines/%s/telemetry", s.SerialNumber)
	token := client.Publish(topic, 1, false, payload)
	if token.Wait() && token.Error() != nil {
		log.WithField("topic", topic).WithError(token.Error()).Error("Failed to publish telemetry")
		return
	}
	log.WithFields(log.Fields{
		"turbine": s.SerialNumber,
		"hours":   fmt.Sprintf("%.2f", s.Hours),
		"starts":  s.Starts,
		"running": s.Running,
	}).Info("Published telemetry")
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func main() {
	broker := os.Getenv("MQTT_BROKER")
	if broker == "" {
		broker = "tcp://localhost:1883"
	}
	fleetSize := envInt("FLEET_SIZE", 5)
	tickSec := envInt("TICK_SECONDS", 10)

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("turbine-parts-simulator").
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).Fatal("Failed to connect to MQTT broker")
	}
	defer client.Disconnect(250)

	log.WithFields(log.Fields{
		"broker": broker,
		"fleet":  fleetSize,
		"tick":   tickSec,
	}).Info("Simulator started")

	fleet := newFleet(fleetSize)
	ticker := time.NewTicker(time.Duration(tickSec) * time.Second)
	defer ticker.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			for _, turbine := range fleet {
				step(turbine, float64(tickSec))
				publish(client, turbine)
			}
		case <-stop:
			log.Info("Simulator stopped")
			return
		}
	}
}
