package handler

import (
	"errors"
	"net/http"
	"ratesmanager/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Delete godoc
// @Summary  Delete an exchange rate
// @Tags     rates
// @Param    id path string true "Rate id"
// @Success  204
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /api/v1/rates/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rate id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			writeError(w, http.StatusNotFound, domain.ErrRateNotFound.Error())
			return
		}
		msg := "failed to delete exchange rate"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Delete", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
