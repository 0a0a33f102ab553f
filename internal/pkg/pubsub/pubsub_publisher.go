package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/logger"
	"loanlink/internal/pkg/models"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type PubSubResult interface {
	Get(ctx context.Context) (string, error)
}

type PubSubTopic interface {
	Publish(ctx context.Context, msg *pubsub.Message) PubSubResult
	Stop()
}

type PubSubClient struct {
	Client *pubsub.Client
	Topic  PubSubTopic
}

type GCPTopicAdapter struct {
	topic *pubsub.Topic
}

func (g *GCPTopicAdapter) Publish(ctx context.Context, msg *pubsub.Message) PubSubResult {
	return &GCPPublishResultAdapter{g.topic.Publish(ctx, msg)}
}

func (g *GCPTopicAdapter) Stop() {
	g.topic.Stop()
}

type GCPPublishResultAdapter struct {
	res *pubsub.PublishResult
}

func (g *GCPPublishResultAdapter) Get(ctx context.Context) (string, error) {
	return g.res.Get(ctx)
}

type GCPClientFactory func(ctx context.Context, projectID string, opts ...option.ClientOption) (*pubsub.Client, error)

func NewPubSubClient(ctx context.Context, projectID, topicID string, factory GCPClientFactory) (*PubSubClient, error) {
	client, err := factory(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf(log_messages.ErrorPubSubClientCreation, err)
	}

	topic := client.Topic(topicID)
	if topic == nil {
		return nil, fmt.Errorf(log_messages.TopicDoesNotExists, topicID)
	}

	adapter := &GCPTopicAdapter{topic: topic}

	return &PubSubClient{Client: client, Topic: adapter}, nil
}

// Close flushes pending publishes and releases the client.
func (p *PubSubClient) Close() error {
	if p.Topic != nil {
		p.Topic.Stop()
	}
	if p.Client == nil {
		return nil
	}
	if err := p.Client.Close(); err != nil {
		logger.Error("failed to close pubsub client", err)
		return err
	}
	return nil
}

func (p *PubSubClient) PublishMessage(ctx context.Context, message any, attributes map[string]string) (string, error) {

	inputData, err := json.Marshal(message)
	if err != nil {
		logger.CtxError(ctx, "failed to marshal message", err)
		return "", fmt.Errorf(log_messages.ErrorMarshallingMessage, err)
	}

	res := p.Topic.Publish(ctx, &pubsub.Message{Data: inputData, Attributes: attributes})

	messageID, err := res.Get(ctx)
	if err != nil {
		logger.CtxError(ctx, "failed to publish message", err)
		return "", fmt.Errorf(log_messages.ErrorInMessagePublishing, err)
	}

	return messageID, nil
}

// PublishPaymentConfirmed announces that a loan application fee has been paid.
func (p *PubSubClient) PublishPaymentConfirmed(ctx context.Context, msg models.PaymentConfirmedMessage) (string, error) {
	if msg.EventType == "" {
		msg.EventType = models.PaymentConfirmedEvent
	}

	messageID, err := p.PublishMessage(ctx, msg, map[string]string{"eventType": msg.EventType})
	if err != nil {
		return "", err
	}

	logger.CtxInfo(ctx, "Payment confirmation published",
		zap.String("pubsubMsgId", messageID),
		zap.String("loanApplicationId", msg.LoanApplicationID),
	)
	return messageID, nil
}
