package queue

import (
	"context"
	"encoding/json"
	"ratesmanager/internal/domain"
	"time"

	"github.com/segmentio/kafka-go"
)

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Publisher) PublishRateAdded(ctx context.Context, rate *domain.ExchangeRate) error {
	body, err := json.Marshal(RateAddedMessage{
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Bid:          rate.Bid,
		Ask:          rate.Ask,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(rate.FromCurrency + rate.ToCurrency),
		Value: body,
		Time:  time.Now(),
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
