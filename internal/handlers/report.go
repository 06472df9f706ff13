package handlers

import (
	"net/http"

	"github.com/diewo77/go-assets/httpx"
	"github.com/diewo77/go-assets/internal/metrics"
	"github.com/diewo77/go-assets/internal/middleware"
	"github.com/diewo77/go-assets/internal/report"
	"go.uber.org/zap"
)

type ReportHandler struct {
	gen *report.Generator
	log *zap.Logger
}

func NewReportHandler(gen *report.Generator, log *zap.Logger) *ReportHandler {
	return &ReportHandler{gen: gen, log: log}
}

// PDF streams the maintenance report, optionally filtered by client_id.
func (h *ReportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	clientID, err := queryClientID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_client_id", nil)
		return
	}
	doc, err := h.gen.PDF(r.Context(), clientID, middleware.LangFrom(r))
	if err != nil {
		metrics.ReportFailures.WithLabelValues("pdf").Inc()
		h.log.Error("pdf report failed", zap.Error(err), zap.String("request_id", middleware.RequestIDFrom(r.Context())))
		httpx.JSONError(w, http.StatusInternalServerError, "report_generation_failed", nil)
		return
	}
	metrics.ReportPages.WithLabelValues("pdf").Observe(float64(doc.Stats.Pages))
	h.log.Info("pdf report generated",
		zap.Int("pages", doc.Stats.Pages),
		zap.Int("rows", doc.Stats.Rows),
		zap.Bool("client_missing", doc.Selection.ClientMissing))
	httpx.Attachment(w, report.PDFContentType, report.PDFFilename, doc.Data)
}

// XLSX writes the same selection as a spreadsheet.
func (h *ReportHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	clientID, err := queryClientID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_client_id", nil)
		return
	}
	doc, err := h.gen.XLSX(r.Context(), clientID, middleware.LangFrom(r))
	if err != nil {
		metrics.ReportFailures.WithLabelValues("xlsx").Inc()
		h.log.Error("xlsx report failed", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "report_generation_failed", nil)
		return
	}
	httpx.Attachment(w, report.XLSXContentType, report.XLSXFilename, doc.Data)
}
