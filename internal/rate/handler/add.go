package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"ratesmanager/internal/rate"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AddRateRequest struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Bid          decimal.Decimal `json:"bid"`
	Ask          decimal.Decimal `json:"ask"`
}

type AddRateResponse struct {
	ID string `json:"id"`
}

// Add godoc
// @Summary  Add an exchange rate
// @Tags     rates
// @Accept   json
// @Produce  json
// @Param    request body AddRateRequest true "Rate to add"
// @Success  201 {object} AddRateResponse
// @Failure  400 {object} errorResponse
// @Router   /api/v1/rates [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 512)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req AddRateRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	from := strings.TrimSpace(req.FromCurrency)
	to := strings.TrimSpace(req.ToCurrency)

	id, err := h.service.Add(r.Context(), from, to, req.Bid, req.Ask)
	if err != nil {
		var verr *rate.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		msg := "failed to add exchange rate"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Add", "from": from, "to": to}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.Header().Set("Location", "/api/v1/rates/"+from+"/"+to)
	writeJSON(w, http.StatusCreated, AddRateResponse{ID: id.String()})
}
