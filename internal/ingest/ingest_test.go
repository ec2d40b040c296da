package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enerdev/turbine-parts/internal/models"
)

type fakeApplier struct {
	applied []models.OperatingTelemetry
	err     error
}

func (f *fakeApplier) ApplyTelemetry(ctx context.Context, reading models.OperatingTelemetry) (models.Turbine, error) {
	if f.err != nil {
		return models.Turbine{}, f.err
	}
	f.applied = append(f.applied, reading)
	return models.Turbine{
		SerialNumber:       reading.TurbineSerialNumber,
		CurrentTotalHours:  reading.Hours,
		CurrentTotalStarts: reading.Starts,
	}, nil
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 0 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

func TestHandleMessage_AppliesReading(t *testing.T) {
	applier := &fakeApplier{}
	s := &Subscriber{applier: applier, topic: DefaultTopic}

	msg := &fakeMessage{
		topic:   "turbines/T-SN-101/telemetry",
		payload: []byte(`{"turbine_serial_number":"T-SN-101","hours":50100.5,"starts":1210}`),
	}
	s.handleMessage(nil, msg)

	assert.Len(t, applier.applied, 1)
	assert.Equal(t, "T-SN-101", applier.applied[0].TurbineSerialNumber)
	assert.Equal(t, 50100.5, applier.applied[0].Hours)
	assert.Equal(t, 1210, applier.applied[0].Starts)
}

func TestHandleMessage_MalformedPayload(t *testing.T) {
	applier := &fakeApplier{}
	s := &Subscriber{applier: applier, topic: DefaultTopic}

	s.handleMessage(nil, &fakeMessage{topic: "turbines/x/telemetry", payload: []byte("{bad")})
	assert.Empty(t, applier.applied)
}

func TestHandleMessage_ApplierError(t *testing.T) {
	applier := &fakeApplier{err: errors.New("turbine not found")}
	s := &Subscriber{applier: applier, topic: DefaultTopic}

	// Errors are logged and dropped, never panic the message loop.
	s.handleMessage(nil, &fakeMessage{
		topic:   "turbines/T-MISSING/telemetry",
		payload: []byte(`{"turbine_serial_number":"T-MISSING"}`),
	})
	assert.Empty(t, applier.applied)
}
