//go:build integration

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"storefront/internal/platform/config"
	"storefront/internal/platform/kafka"
	"storefront/pkg/testutil/containers"
)

func TestKafkaSink_ProducesKeyedRecords(t *testing.T) {
	rp := containers.NewRedpandaContainer(t)
	const topic = "storefront.events.test"
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	producer, err := kafka.NewProducer(config.KafkaConfig{
		Brokers:  []string{rp.Broker},
		Topic:    topic,
		ClientID: "storefront-test",
	})
	require.NoError(t, err)
	require.NoError(t, kafka.EnsureTopic(ctx, producer, topic, 1, 1))

	pub := NewPublisher(NewKafkaSink(producer, topic))
	require.NoError(t, pub.Emit(ctx, Event{
		Type:      PaymentConfirmed,
		OrderCode: "ORD-42",
		Payload:   map[string]any{"amount": 1500},
	}))
	require.NoError(t, pub.Close())

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.Empty(t, fetches.Errors())
	records := fetches.Records()
	require.Len(t, records, 1)

	assert.Equal(t, "ORD-42", string(records[0].Key))
	var got Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, PaymentConfirmed, got.Type)
	assert.Equal(t, "event-type", records[0].Headers[0].Key)
}
