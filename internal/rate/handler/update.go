package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"ratesmanager/internal/domain"
	"ratesmanager/internal/rate"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type UpdateRateRequest struct {
	Bid decimal.Decimal `json:"bid"`
	Ask decimal.Decimal `json:"ask"`
}

// Update godoc
// @Summary  Update bid/ask of an exchange rate
// @Tags     rates
// @Accept   json
// @Param    id path string true "Rate id"
// @Param    request body UpdateRateRequest true "New prices"
// @Success  204
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /api/v1/rates/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rate id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req UpdateRateRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdatePrices(r.Context(), id, req.Bid, req.Ask); err != nil {
		var verr *rate.ValidationError
		switch {
		case errors.As(err, &verr):
			writeValidationError(w, verr)
		case errors.Is(err, domain.ErrRateNotFound):
			writeError(w, http.StatusNotFound, domain.ErrRateNotFound.Error())
		default:
			msg := "failed to update exchange rate"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Update", "id": id}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
