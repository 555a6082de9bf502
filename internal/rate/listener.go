package rate

import (
	"context"
	"ratesmanager/internal/adapters/queue"
	"ratesmanager/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

type MessageSource interface {
	Fetch(ctx context.Context) (queue.Delivery, error)
	Ack(ctx context.Context, d queue.Delivery) error
}

// Listener consumes rate added events independently of request handling.
// When ackEnabled is false, handled messages are deliberately left
// unacknowledged so the broker redelivers them later.
type Listener struct {
	source     MessageSource
	ackEnabled bool
}

func NewListener(source MessageSource, ackEnabled bool) *Listener {
	return &Listener{source: source, ackEnabled: ackEnabled}
}

// Run consumes messages until ctx is canceled. A fetch failure is non-fatal to
// the hosting process: the listener logs and leaves its loop while the rest of
// the service keeps serving requests.
func (l *Listener) Run(ctx context.Context) {
	logrus.Info("✅ Rate added listener started")
	for {
		delivery, err := l.source.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logrus.Info("Rate added listener stopped")
			} else {
				logrus.WithError(err).Error("Fetching rate added message failed, listener stopped")
			}
			return
		}

		if !HandleRateAdded(delivery.Body) {
			metrics.MessagesConsumedTotal.WithLabelValues("decode_error").Inc()
			continue
		}
		if !l.ackEnabled {
			metrics.MessagesConsumedTotal.WithLabelValues("unacked").Inc()
			continue
		}
		if ackErr := l.source.Ack(ctx, delivery); ackErr != nil {
			logrus.WithError(ackErr).Error("Failed to ack rate added message")
			continue
		}
		metrics.MessagesConsumedTotal.WithLabelValues("acked").Inc()
	}
}

// HandleRateAdded processes one raw message body and reports whether it should
// be acknowledged. Kept free of queue mechanics so it is testable without a
// live broker.
func HandleRateAdded(body []byte) bool {
	msg, err := queue.DecodeRateAdded(body)
	if err != nil {
		logrus.WithError(err).Error("Cannot decode rate added message, leaving it for redelivery")
		return false
	}
	logrus.WithFields(logrus.Fields{
		"from": msg.FromCurrency,
		"to":   msg.ToCurrency,
		"bid":  msg.Bid.String(),
		"ask":  msg.Ask.String(),
	}).Info("📩 New exchange rate received")
	return true
}
