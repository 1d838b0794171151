package http

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/model"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/types"
)

// LoggingMiddleware returns a middleware that logs HTTP requests
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := ctxlog.From(ctx)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("HTTP request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// viewData feeds the index template for every page state: bare form,
// rendered result, or error message.
type viewData struct {
	Error  string
	Result *model.ExtractionResult
	Token  string
}

// renderView renders the index template with data and the given status
func renderView(w http.ResponseWriter, views *template.Template, status int, data viewData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := views.ExecuteTemplate(w, "index.html", data); err != nil {
		ctxlog.From(context.Background()).Error("Failed to render view", "error", err)
	}
}

// userMessage maps the failure taxonomy to the short message shown to the
// user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrNotAPackage):
		return "The uploaded file is not a valid .pptx package."
	case errors.Is(err, types.ErrNoResultYet):
		return "No report available. Please upload a file first."
	default:
		return "Error processing file: " + err.Error()
	}
}
