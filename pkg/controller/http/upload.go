package http

import (
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/ctxlog"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/interfaces"
)

// maxUploadBytes caps how much of the upload is read into memory.
// Presentations are assumed small; this is a safety stop, not a feature.
const maxUploadBytes = 64 << 20

// UploadHandler serves the upload form and processes submitted packages.
type UploadHandler struct {
	extractUC interfaces.ExtractUseCase
	store     interfaces.ReportStore
	views     *template.Template
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(
	extractUC interfaces.ExtractUseCase,
	store interfaces.ReportStore,
	views *template.Template,
) *UploadHandler {
	return &UploadHandler{
		extractUC: extractUC,
		store:     store,
		views:     views,
	}
}

// Index serves the upload form.
func (h *UploadHandler) Index(w http.ResponseWriter, r *http.Request) {
	renderView(w, h.views, http.StatusOK, viewData{})
}

// Handle processes an uploaded pptx package. Validation is done by opening
// the bytes as a package, never by trusting the filename extension.
func (h *UploadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("Upload without a file field", "error", err)
		renderView(w, h.views, http.StatusBadRequest, viewData{
			Error: "No file was uploaded.",
		})
		return
	}
	defer file.Close()

	logger.Info("Received file upload", slog.String("filename", header.Filename))

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read upload", "filename", header.Filename, "error", err)
		renderView(w, h.views, http.StatusInternalServerError, viewData{
			Error: "Failed to read the uploaded file.",
		})
		return
	}

	result, err := h.extractUC.Extract(ctx, header.Filename, data)
	if err != nil {
		logger.Error("Failed to parse file",
			"filename", header.Filename,
			"error", err,
		)
		renderView(w, h.views, http.StatusBadRequest, viewData{
			Error: userMessage(err),
		})
		return
	}

	token := h.store.Put(result)

	logger.Info("Extracted picture descriptions",
		slog.String("filename", header.Filename),
		slog.Int("slides", result.SlideCount()),
		slog.Int("descriptions", result.DescriptionCount()),
	)

	renderView(w, h.views, http.StatusOK, viewData{
		Result: result,
		Token:  token,
	})
}
