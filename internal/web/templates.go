package web

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

func (s *Server) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		s.serverError(w, fmt.Errorf("render failed: %w", err))
	}
}

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html><html lang=\"en\"><head>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<meta charset=\"utf-8\">"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<title>%s</title>", html.EscapeString(title)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</head><body><main>"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</main></body></html>"); err != nil {
			return err
		}
		return nil
	})
}

// indexPage lists the bound tooltip names and how to request them.
func indexPage(names []string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>Tooltips</h1><p>POST a JSON datum to a tooltip endpoint to receive its HTML fragment.</p>"); err != nil {
			return err
		}
		if len(names) == 0 {
			_, err := io.WriteString(w, "<p>No tooltips registered.</p>")
			return err
		}
		if _, err := io.WriteString(w, "<ul>"); err != nil {
			return err
		}
		for _, name := range names {
			escaped := html.EscapeString(name)
			if _, err := fmt.Fprintf(w, "<li><code>%s</code>: <code>POST /tooltips/%s</code>, <code>POST /tooltips/%s/batch</code></li>", escaped, escaped, escaped); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul>"); err != nil {
			return err
		}
		return nil
	})
	return layout("catchmap - Tooltips", body)
}
