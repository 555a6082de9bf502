package queue

import (
	"context"

	"github.com/segmentio/kafka-go"
)

type rawMessage = kafka.Message

// Consumer reads rate added messages as part of a consumer group. Offsets are
// committed only on explicit Ack, giving at-least-once delivery: an unacked
// message is redelivered after the group rebalances or the process restarts.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic string, groupID string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
	}
}

func (c *Consumer) Fetch(ctx context.Context) (Delivery, error) {
	msg, err := c.reader.FetchMessage(ctx)
	if err != nil {
		return Delivery{}, err
	}
	return Delivery{Body: msg.Value, msg: msg}, nil
}

func (c *Consumer) Ack(ctx context.Context, d Delivery) error {
	return c.reader.CommitMessages(ctx, d.msg)
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
