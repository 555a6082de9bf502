package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"ratesmanager/internal/domain"
	"ratesmanager/internal/rate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RateService interface {
	GetByPair(ctx context.Context, from string, to string) (*domain.ExchangeRate, error)
	Add(ctx context.Context, from string, to string, bid, ask decimal.Decimal) (uuid.UUID, error)
	UpdatePrices(ctx context.Context, id uuid.UUID, bid, ask decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PairValidator interface {
	ValidatePair(from string, to string) error
}

type Handler struct {
	validator PairValidator
	service   RateService
}

func NewRateHandler(validator PairValidator, service RateService) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields []rate.FieldError `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeValidationError(w http.ResponseWriter, verr *rate.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:  "validation failed",
		Fields: verr.Fields,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
