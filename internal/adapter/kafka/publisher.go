// Package kafka publishes committed resolution passes to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"promo-auction/internal/core/domain"
	"promo-auction/internal/core/port"
)

var _ port.EventPublisher = (*Publisher)(nil)

// Publisher writes SegmentResolved events keyed by segment, so every pass
// of one segment lands on the same partition in commit order.
type Publisher struct {
	writer *kafka.Writer
	topic  string
}

func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka publisher requires a topic")
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
		},
		topic: topic,
	}, nil
}

func (p *Publisher) PublishSegmentResolved(ctx context.Context, ev domain.SegmentResolved) error {
	msg, err := segmentMessage(p.topic, ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func segmentMessage(topic string, ev domain.SegmentResolved) (kafka.Message, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode segment resolved: %w", err)
	}
	return kafka.Message{
		Topic: topic,
		Key:   []byte(ev.Segment),
		Value: payload,
		Time:  ev.ResolvedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("segment.resolved")},
			{Key: "event_id", Value: []byte(ev.EventID.String())},
		},
	}, nil
}
