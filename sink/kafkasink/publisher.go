// Package kafkasink publishes rate updates to a Kafka topic, keyed by currency.
package kafkasink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/robotomize/valetfx/sink"
	"github.com/segmentio/kafka-go"
)

var ErrNoBrokers = errors.New("kafka brokers are not configured")

var _ sink.Sink = (*Publisher)(nil)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RateEvent is the JSON payload of a published message
type RateEvent struct {
	Currency string    `json:"currency"`
	Rate     string    `json:"rate"`
	AsOf     time.Time `json:"as_of"`
	Source   string    `json:"source"`
}

type Publisher struct {
	writer messageWriter
	source string
	now    func() time.Time
}

// NewPublisher creates a publisher writing to topic on brokers
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
		source: "boc-valet",
		now:    time.Now,
	}, nil
}

func (p *Publisher) SetExchangeRate(ctx context.Context, rate sink.Rate) error {
	v, err := json.Marshal(RateEvent{
		Currency: rate.Symbol.String(),
		Rate:     rate.Rate.String(),
		AsOf:     rate.AsOf,
		Source:   p.source,
	})
	if err != nil {
		return fmt.Errorf("marshal rate event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(rate.Symbol.String()),
		Value: v,
		Time:  p.now(),
	}); err != nil {
		return fmt.Errorf("write rate %s: %w", rate.Symbol, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
