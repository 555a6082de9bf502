package queue

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// RateAddedMessage is the wire event emitted once per newly learned rate.
type RateAddedMessage struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Bid          decimal.Decimal `json:"bid"`
	Ask          decimal.Decimal `json:"ask"`
}

func DecodeRateAdded(body []byte) (*RateAddedMessage, error) {
	var msg RateAddedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode rate added message: %w", err)
	}
	if msg.FromCurrency == "" || msg.ToCurrency == "" {
		return nil, fmt.Errorf("rate added message is missing currency codes")
	}
	return &msg, nil
}

// Delivery is one consumed message together with the handle needed to
// acknowledge it.
type Delivery struct {
	Body []byte

	msg rawMessage
}
