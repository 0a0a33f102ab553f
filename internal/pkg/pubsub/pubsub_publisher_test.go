package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"loanlink/internal/pkg/models"

	gcppubsub "cloud.google.com/go/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type mockPubSubResult struct {
	msgID string
	err   error
}

func (m *mockPubSubResult) Get(ctx context.Context) (string, error) {
	return m.msgID, m.err
}

type mockPubSubTopic struct {
	result    PubSubResult
	published []*gcppubsub.Message
	stopped   bool
}

func (m *mockPubSubTopic) Publish(ctx context.Context, msg *gcppubsub.Message) PubSubResult {
	m.published = append(m.published, msg)
	return m.result
}

func (m *mockPubSubTopic) Stop() {
	m.stopped = true
}

func TestNewPubSubClient(t *testing.T) {
	ctx := context.Background()

	t.Run("factory success", func(t *testing.T) {
		factoryOK := func(ctx context.Context, projectID string, opts ...option.ClientOption) (*gcppubsub.Client, error) {
			return &gcppubsub.Client{}, nil
		}
		client, err := NewPubSubClient(ctx, "proj", "payments", factoryOK)
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.NotNil(t, client.Topic)
	})

	t.Run("factory failure", func(t *testing.T) {
		factoryErr := func(ctx context.Context, projectID string, opts ...option.ClientOption) (*gcppubsub.Client, error) {
			return nil, errors.New("factory failed")
		}
		client, err := NewPubSubClient(ctx, "proj", "payments", factoryErr)
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestPublishMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		topic := &mockPubSubTopic{result: &mockPubSubResult{msgID: "123"}}
		ps := &PubSubClient{Topic: topic}

		got, err := ps.PublishMessage(ctx, map[string]string{"id": "1"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "123", got)
		require.Len(t, topic.published, 1)
		assert.JSONEq(t, `{"id":"1"}`, string(topic.published[0].Data))
	})

	t.Run("marshal failure", func(t *testing.T) {
		ps := &PubSubClient{Topic: &mockPubSubTopic{result: &mockPubSubResult{msgID: "123"}}}
		badMsg := struct {
			Ch chan int `json:"ch"`
		}{Ch: make(chan int)}

		_, err := ps.PublishMessage(ctx, badMsg, nil)
		assert.Error(t, err)
	})

	t.Run("publish failure", func(t *testing.T) {
		ps := &PubSubClient{Topic: &mockPubSubTopic{result: &mockPubSubResult{err: errors.New("publish failed")}}}

		_, err := ps.PublishMessage(ctx, map[string]string{"id": "1"}, nil)
		assert.Error(t, err)
	})
}

func TestPublishPaymentConfirmed(t *testing.T) {
	topic := &mockPubSubTopic{result: &mockPubSubResult{msgID: "msg-9"}}
	ps := &PubSubClient{Topic: topic}
	paidAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	id, err := ps.PublishPaymentConfirmed(context.Background(), models.PaymentConfirmedMessage{
		LoanApplicationID: "665f1c2a9b1e8a0012345678",
		StripePaymentID:   "pi_123",
		PaymentEmail:      "b@example.com",
		PaymentAmount:     500,
		PaidAt:            paidAt,
	})

	require.NoError(t, err)
	assert.Equal(t, "msg-9", id)
	require.Len(t, topic.published, 1)
	assert.Equal(t, models.PaymentConfirmedEvent, topic.published[0].Attributes["eventType"])

	var body models.PaymentConfirmedMessage
	require.NoError(t, json.Unmarshal(topic.published[0].Data, &body))
	assert.Equal(t, models.PaymentConfirmedEvent, body.EventType)
	assert.Equal(t, 500.0, body.PaymentAmount)
	assert.True(t, paidAt.Equal(body.PaidAt))
}

func TestClose(t *testing.T) {
	t.Setenv("PUBSUB_EMULATOR_HOST", "localhost:8085")
	ctx := context.Background()

	client, err := gcppubsub.NewClient(ctx, "dummy-project")
	require.NoError(t, err)

	topic := &mockPubSubTopic{}
	ps := &PubSubClient{Client: client, Topic: topic}

	assert.NoError(t, ps.Close())
	assert.True(t, topic.stopped)

	assert.NoError(t, (&PubSubClient{}).Close())
}
