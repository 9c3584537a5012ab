package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// metaKeyTopic carries Message.Topic through watermill's metadata.
const metaKeyTopic = "topic"

// WatermillBridge is a Bus on top of watermill's in-memory GoChannel.
// Messages are not persisted; a message published with no subscriber is
// dropped.
type WatermillBridge struct {
	channel *gochannel.GoChannel
	logger  *slog.Logger
}

var _ Bus = (*WatermillBridge)(nil)

// BridgeOption configures a WatermillBridge.
type BridgeOption func(*bridgeConfig)

type bridgeConfig struct {
	buffer int64
	logger *slog.Logger
}

// WithOutputBuffer sets how many messages may queue per subscriber.
func WithOutputBuffer(n int64) BridgeOption {
	return func(c *bridgeConfig) { c.buffer = n }
}

// WithLogger sets the logger handler failures are reported to.
func WithLogger(l *slog.Logger) BridgeOption {
	return func(c *bridgeConfig) { c.logger = l }
}

// NewWatermillBridge creates the bus.
func NewWatermillBridge(opts ...BridgeOption) *WatermillBridge {
	cfg := bridgeConfig{buffer: 64, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &WatermillBridge{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: cfg.buffer},
			watermill.NewStdLogger(false, false),
		),
		logger: cfg.logger.With("component", "pubsub"),
	}
}

func toWatermill(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	return wmMsg
}

func fromWatermill(wmMsg *message.Message) Message {
	metadata := make(map[string]string, len(wmMsg.Metadata))
	for k, v := range wmMsg.Metadata {
		if k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// Publish implements Publisher.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wmMsg := toWatermill(msg)
	wmMsg.SetContext(ctx)
	return wb.channel.Publish(msg.Topic, wmMsg)
}

// Subscribe implements Subscriber.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			if err := handler(ctx, fromWatermill(wmMsg)); err != nil {
				wb.logger.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
			}
			// Redelivery from the in-memory channel would only repeat the
			// failure, so every message is acked.
			wmMsg.Ack()
		}
		wb.logger.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts the bus down and ends every subscription.
func (wb *WatermillBridge) Close() error {
	return wb.channel.Close()
}

// Shutdown closes the bridge when the application container shuts down.
func (wb *WatermillBridge) Shutdown() error {
	return wb.Close()
}
