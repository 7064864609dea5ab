package kafka_test

import (
	"context"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reevaluated struct {
	Event     string `json:"event"`
	Processed int    `json:"processed"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	tests := []struct {
		name      string
		message   kafka.Message
		wantValue string
		wantErr   bool
	}{
		{
			name:      "encodes the value as json",
			message:   kafka.Message{Key: "bookings.reevaluated", Value: reevaluated{Event: "bookings.reevaluated", Processed: 3}},
			wantValue: `{"event":"bookings.reevaluated","processed":3}`,
		},
		{
			name:    "unsupported value",
			message: kafka.Message{Key: "k", Value: make(chan int)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := tt.message.ToKafkaMessage()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.message.Key, string(msg.Key))
			assert.JSONEq(t, tt.wantValue, string(msg.Value))
		})
	}
}

func TestDecodeMessage(t *testing.T) {
	msg, err := (&kafka.Message{Key: "k", Value: reevaluated{Event: "bookings.reevaluated", Processed: 2}}).ToKafkaMessage()
	require.NoError(t, err)

	decoded, err := kafka.DecodeMessage[reevaluated](msg)

	require.NoError(t, err)
	assert.Equal(t, reevaluated{Event: "bookings.reevaluated", Processed: 2}, decoded)
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"localhost:9092"}

	publisher := kafka.New(cfg)

	assert.False(t, publisher.Enabled())
	assert.Empty(t, publisher.Topic())
	assert.NoError(t, publisher.SendMessages(context.Background(), "any", kafka.Message{Key: "k", Value: 1}))
}

func TestNew_Enabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Kafka.Topic = "booking-events"

	publisher := kafka.New(cfg)

	assert.True(t, publisher.Enabled())
	assert.Equal(t, "booking-events", publisher.Topic())
}
