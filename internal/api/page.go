package api

import (
	"net/http"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// Page returns a handler rendering every registered section, with its stored
// override applied, as one HTML document.
func (h *Handler) Page() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		names := h.registry.Names()
		body := make([]g.Node, 0, len(names))
		for _, name := range names {
			section, err := h.registry.Lookup(name)
			if err != nil {
				writeSectionError(w, err)
				return
			}
			entry, err := h.storage.GetOverride(name)
			if err != nil {
				writeSectionError(w, err)
				return
			}
			res, err := section.Resolve(entry.Document)
			if err != nil {
				writeSectionError(w, err)
				return
			}
			body = append(body, res.Node())
		}

		page := html.Doctype(
			html.HTML(
				html.Lang("en"),
				html.Head(
					html.Meta(html.Charset("utf-8")),
					html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
					html.TitleEl(g.Text("Section preview")),
					html.Link(html.Rel("stylesheet"), html.Href("/static/sections.css")),
				),
				html.Body(body...),
			),
		)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Render(w); err != nil {
			h.logger.Error("render page failed",
				zap.String("request_id", requestIDFromContext(r.Context())),
				zap.Error(err),
			)
		}
	})
}
