package outbox

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
)

// Message is one event handed to the broker.
type Message struct {
	Key       string
	Value     []byte
	EventType string
	EventID   string
}

// Publisher delivers messages to a broker.
type Publisher interface {
	Publish(ctx context.Context, msgs ...Message) error
	Close() error
}

// KafkaPublisher writes to a single topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("outbox: no kafka brokers configured")
	}
	if topic == "" {
		return nil, errors.New("outbox: kafka topic is required")
	}
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, msgs ...Message) error {
	if len(msgs) == 0 {
		return nil
	}
	return p.writer.WriteMessages(ctx, toKafka(msgs)...)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toKafka(msgs []Message) []kafka.Message {
	out := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, kafka.Message{
			Key:   []byte(m.Key),
			Value: m.Value,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(m.EventType)},
				{Key: "event_id", Value: []byte(m.EventID)},
			},
		})
	}
	return out
}
