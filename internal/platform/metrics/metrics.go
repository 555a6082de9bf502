package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RateLookupsTotal counts resolver lookups by result: hit or miss.
	RateLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exchange_rate_lookups_total",
		Help: "Exchange rate lookups partitioned by store hit/miss",
	}, []string{"result"})

	// QuoteFetchesTotal counts fallback fetches by outcome:
	// success, unavailable, not_found, parse_error.
	QuoteFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_fetches_total",
		Help: "External quote fetches partitioned by outcome",
	}, []string{"outcome"})

	// PublishFailuresTotal counts swallowed rate-added publish failures.
	PublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rate_added_publish_failures_total",
		Help: "Failed best-effort publications of rate added events",
	})

	// MessagesConsumedTotal counts listener deliveries by result: acked,
	// unacked, decode_error.
	MessagesConsumedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rate_added_messages_consumed_total",
		Help: "Rate added messages consumed partitioned by handling result",
	}, []string{"result"})
)
