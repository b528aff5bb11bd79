package reports

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"fleet-app-go/internal/domain/fleet"
	"fleet-app-go/internal/export"
	"fleet-app-go/internal/render"
	"fleet-app-go/internal/report"
	"fleet-app-go/pkg/logger"
)

const defaultReportName = "Relatorio_Frota"

type Handlers struct {
	Fleet    *fleet.Service
	Registry *export.Registry
	Exporter *export.Exporter
	log      logger.Logger
}

func New(fleetService *fleet.Service, registry *export.Registry, exporter *export.Exporter, log logger.Logger) *Handlers {
	return &Handlers{
		Fleet:    fleetService,
		Registry: registry,
		Exporter: exporter,
		log:      log,
	}
}

// Dashboard serves the filtered aggregate view. The response carries the
// filtered records alongside the summary so one request feeds the whole page.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	spec := specFromQuery(r)

	logs, expenses, err := h.loadRecords(r)
	if err != nil {
		h.log.Error("reports.dashboard load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	logs, expenses = report.Apply(logs, expenses, spec)

	writeJSON(w, http.StatusOK, dashboardResponse{
		TruckLogs: logs,
		Expenses:  expenses,
		Summary:   report.Aggregate(logs, expenses),
	})
}

// PDF runs the full export pipeline for the filtered records and streams the
// document as an attachment. A concurrent export is rejected with 409.
func (h *Handlers) PDF(w http.ResponseWriter, r *http.Request) {
	spec := specFromQuery(r)
	baseName := r.URL.Query().Get("name")
	if baseName == "" {
		baseName = defaultReportName
	}

	logs, expenses, err := h.loadRecords(r)
	if err != nil {
		h.log.Error("reports.pdf load failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	logs, expenses = report.Apply(logs, expenses, spec)

	target, err := render.Report(render.Data{
		TruckLogs:   logs,
		Expenses:    expenses,
		Summary:     report.Aggregate(logs, expenses),
		GeneratedAt: time.Now(),
	})
	if err != nil {
		h.log.Error("reports.pdf render failed", "err", err)
		writeError(w, http.StatusInternalServerError, "render_failed", "report rendering failed")
		return
	}

	targetID := uuid.NewString()
	h.Registry.Mount(targetID, target)

	doc, err := h.Exporter.Export(r.Context(), targetID, baseName)
	if err != nil {
		h.Registry.Unmount(targetID)
		if errors.Is(err, export.ErrExportInProgress) {
			writeError(w, http.StatusConflict, "export_in_progress", "an export is already in progress")
			return
		}
		h.log.Error("reports.pdf export failed", "err", err)
		writeError(w, http.StatusInternalServerError, "export_failed", "pdf export failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Bytes)
}

func (h *Handlers) loadRecords(r *http.Request) ([]fleet.TruckLog, []fleet.Expense, error) {
	logs, err := h.Fleet.ListTruckLogs(r.Context())
	if err != nil {
		return nil, nil, err
	}
	expenses, err := h.Fleet.ListExpenses(r.Context())
	if err != nil {
		return nil, nil, err
	}
	return logs, expenses, nil
}

func specFromQuery(r *http.Request) report.FilterSpec {
	q := r.URL.Query()
	return report.FilterSpec{
		Month:        q.Get("month"),
		TruckModel:   q.Get("truck_model"),
		LicensePlate: q.Get("license_plate"),
		Supplier:     q.Get("supplier"),
		Search:       q.Get("q"),
	}
}

type dashboardResponse struct {
	TruckLogs []fleet.TruckLog `json:"truckLogs"`
	Expenses  []fleet.Expense  `json:"expenses"`
	Summary   report.Summary   `json:"summary"`
}
