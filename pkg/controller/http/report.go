package http

import (
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/m-mizutani/ctxlog"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/interfaces"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/model"
)

// ReportHandler serves the downloadable text report for a stored
// extraction result.
type ReportHandler struct {
	store interfaces.ReportStore
	views *template.Template
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(store interfaces.ReportStore, views *template.Template) *ReportHandler {
	return &ReportHandler{
		store: store,
		views: views,
	}
}

// Handle returns the report for the result named by ?token=, or for the
// most recent upload when no token is given.
func (h *ReportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.From(r.Context())

	var result *model.ExtractionResult
	var err error

	if token := r.URL.Query().Get("token"); token != "" {
		result, err = h.store.Get(token)
	} else {
		result, err = h.store.Latest()
	}
	if err != nil {
		logger.Warn("Report requested with no stored result", "error", err)
		renderView(w, h.views, http.StatusBadRequest, viewData{
			Error: userMessage(err),
		})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "report_"+result.Filename+".txt"))
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, result.Report()); err != nil {
		logger.Error("Failed to write report", "error", err)
	}
}
