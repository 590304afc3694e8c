package apiutil

import (
	"bytes"
	"context"
	"html"
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"
)

// RenderHTMLComponent renders component into a buffer and writes it with
// status 200 and any extra headers. On failure it logs logMsg, responds 500
// with errMsg and returns false.
func RenderHTMLComponent(ctx context.Context, w http.ResponseWriter, component templ.Component, headers map[string]string, logMsg, errMsg string) bool {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg(logMsg)
		http.Error(w, errMsg, http.StatusInternalServerError)
		return false
	}

	for key, value := range headers {
		w.Header().Set(key, value)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to write HTML response")
		return false
	}
	return true
}

// WriteHTMLFeedback writes a small status message fragment for htmx targets.
func WriteHTMLFeedback(w http.ResponseWriter, status int, message string) {
	class := "feedback feedback-success"
	if status >= http.StatusBadRequest {
		class = "feedback feedback-error"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`<div class="` + class + `" role="status">` + html.EscapeString(message) + `</div>`))
}
