package fleet

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	fleetdomain "fleet-app-go/internal/domain/fleet"
	"fleet-app-go/pkg/logger"
)

type Handlers struct {
	Fleet *fleetdomain.Service
	log   logger.Logger
}

func New(fleet *fleetdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Fleet: fleet, log: log}
}

func (h *Handlers) ListTruckLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Fleet.ListTruckLogs(r.Context())
	if err != nil {
		h.log.Error("truck-logs.list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *Handlers) CreateTruckLog(w http.ResponseWriter, r *http.Request) {
	var req createTruckLogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	log, err := h.Fleet.CreateTruckLog(r.Context(), req.toInput())
	if err != nil {
		h.log.Warn("truck-logs.create rejected", "err", err)
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, log)
}

func (h *Handlers) UpdateTruckLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateTruckLogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	log, err := h.Fleet.UpdateTruckLog(r.Context(), req.toInput(id))
	if err != nil {
		if errors.Is(err, fleetdomain.ErrTruckLogNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "truck log not found")
			return
		}
		h.log.Warn("truck-logs.update rejected", "id", id, "err", err)
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, log)
}

func (h *Handlers) DeleteTruckLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Fleet.DeleteTruckLog(r.Context(), id); err != nil {
		if errors.Is(err, fleetdomain.ErrTruckLogNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "truck log not found")
			return
		}
		h.log.Error("truck-logs.delete failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Fleet.ListExpenses(r.Context())
	if err != nil {
		h.log.Error("expenses.list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	expense, err := h.Fleet.CreateExpense(r.Context(), req.toInput())
	if err != nil {
		h.log.Warn("expenses.create rejected", "err", err)
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, expense)
}

func (h *Handlers) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid json body")
		return
	}

	expense, err := h.Fleet.UpdateExpense(r.Context(), req.toInput(id))
	if err != nil {
		if errors.Is(err, fleetdomain.ErrExpenseNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "expense not found")
			return
		}
		h.log.Warn("expenses.update rejected", "id", id, "err", err)
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Fleet.DeleteExpense(r.Context(), id); err != nil {
		if errors.Is(err, fleetdomain.ErrExpenseNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "expense not found")
			return
		}
		h.log.Error("expenses.delete failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
