package handler

import (
	"errors"
	"net/http"
	"ratesmanager/internal/domain"
	"ratesmanager/internal/rate"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type RateResponse struct {
	ID           string          `json:"id"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Bid          decimal.Decimal `json:"bid"`
	Ask          decimal.Decimal `json:"ask"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// GetByPair godoc
// @Summary  Get exchange rate for a currency pair
// @Tags     rates
// @Produce  json
// @Param    from path string true "From currency code"
// @Param    to   path string true "To currency code"
// @Success  200 {object} RateResponse
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Failure  502 {object} errorResponse
// @Router   /api/v1/rates/{from}/{to} [get]
func (h *Handler) GetByPair(w http.ResponseWriter, r *http.Request) {
	from := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "from")))
	to := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "to")))

	if err := h.validator.ValidatePair(from, to); err != nil {
		var verr *rate.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.GetByPair(r.Context(), from, to)
	if err != nil {
		var quoteNotFound *domain.QuoteNotFoundError
		switch {
		case errors.As(err, &quoteNotFound):
			writeError(w, http.StatusNotFound, quoteNotFound.Error())
		case errors.Is(err, domain.ErrSourceUnavailable):
			writeError(w, http.StatusBadGateway, "quote source is unavailable, try again later")
		default:
			msg := "ups, couldn't get rate by pair this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByPair", "from": from, "to": to}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, RateResponse{
		ID:           res.ID.String(),
		FromCurrency: res.FromCurrency,
		ToCurrency:   res.ToCurrency,
		Bid:          res.Bid,
		Ask:          res.Ask,
		UpdatedAt:    res.UpdatedAt,
	})
}
