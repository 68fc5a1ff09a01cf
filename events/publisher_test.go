package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	eventType string
	key       string
	payload   []byte
}

func (c *capturePublisher) Publish(_ context.Context, eventType string, payload []byte, key string) error {
	c.eventType, c.key, c.payload = eventType, key, payload
	return nil
}

func (c *capturePublisher) Close() error { return nil }

func TestPublishJSON(t *testing.T) {
	p := &capturePublisher{}
	require.NoError(t, PublishJSON(context.Background(), p, TypeLeadCaptured, "0912", map[string]string{"role": "tenant"}))

	assert.Equal(t, TypeLeadCaptured, p.eventType)
	assert.Equal(t, "0912", p.key)

	var ev struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(p.payload, &ev))
	assert.Equal(t, TypeLeadCaptured, ev.Type)
	assert.Equal(t, "tenant", ev.Data["role"])
}

func TestKafkaPublisher_TopicMapping(t *testing.T) {
	_, err := NewKafkaPublisher(nil, nil)
	require.Error(t, err)

	p, err := NewKafkaPublisher([]string{"localhost:9092"}, map[string]string{TypeActivityRecorded: "realty.activity"})
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, "realty.activity", p.topicFor(TypeActivityRecorded))
	assert.Equal(t, TypeLeadCaptured, p.topicFor(TypeLeadCaptured))
}

func TestKafkaPublisher_DoesNotBlockCallers(t *testing.T) {
	p, err := NewKafkaPublisher([]string{"localhost:9092"}, nil)
	require.NoError(t, err)
	defer p.Close()

	assert.True(t, p.writer.Async)
	assert.LessOrEqual(t, p.writer.BatchTimeout, 100*time.Millisecond)
	assert.NotNil(t, p.writer.Completion)
}

func TestLogPublisher(t *testing.T) {
	p := NewLogPublisher(nil)
	assert.NoError(t, p.Publish(context.Background(), TypeActivityRecorded, []byte("{}"), "k"))
	assert.NoError(t, p.Close())
}
