package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/r6status/internal/middleware"
	"github.com/mcoot/r6status/internal/web/templates/layout"
)

// Recovery creates panic recovery middleware for the roster pages.
// The panic page keeps the site layout and links back to the roster.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, rosterPanicHandler)
}

var panicBody = templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, `<h1>Something went wrong</h1><p><a href="/">Back to the roster</a></p>`)
	return err
})

func rosterPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusInternalServerError)

	page := layout.Base(layout.PageData{
		Title: "Error",
		Flash: &layout.FlashMessage{Type: "error", Message: "The server hit an unexpected error"},
	}, panicBody)
	_ = page.Render(r.Context(), w)
}
