package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/roland/portfolio/internal/client"
	"github.com/roland/portfolio/internal/comment"
	"github.com/roland/portfolio/internal/dom/htmldoc"
	"github.com/roland/portfolio/internal/page"
	"github.com/roland/portfolio/internal/prefs"
)

// alertID is the page region that shows a blocking message after a failed action.
const alertID = "page-alert"

type shellData struct {
	Owner string
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("encoding health response", "error", err)
	}
}

// handlePage renders the contact page for the visitor.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	limit := s.maxComments(w, r)
	s.renderPage(w, r, func(ctx context.Context, api page.API, b *page.Bindings) {
		page.OnLoad(ctx, api, b, s.pageOptions(limit))
	})
}

// handleDelete deletes all comments and renders the page with the reloaded list.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	limit := s.maxComments(w, r)
	s.renderPage(w, r, func(ctx context.Context, api page.API, b *page.Bindings) {
		page.OnDelete(ctx, api, b, s.pageOptions(limit), func(msg string) {
			showAlert(b, msg)
		})
	})
}

func (s *Server) pageOptions(limit int) page.Options {
	return page.Options{
		Owner:       s.cfg.Owner,
		MaxComments: limit,
	}
}

// loadFunc runs page routines against the bound page.
type loadFunc func(context.Context, page.API, *page.Bindings)

// renderPage runs load on the visitor's behalf and writes the result.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, load loadFunc) {
	var out bytes.Buffer
	if err := s.buildPage(r.Context(), &out, r.Cookies(), load); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering page: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := out.WriteTo(w); err != nil {
		slog.Warn("writing page", "error", err)
	}
}

// WritePage renders the page as an anonymous visitor would see it at GET /.
func (s *Server) WritePage(ctx context.Context, w io.Writer, limit int) error {
	return s.buildPage(ctx, w, nil, func(ctx context.Context, api page.API, b *page.Bindings) {
		page.OnLoad(ctx, api, b, s.pageOptions(limit))
	})
}

// buildPage executes the page shell, binds its elements, runs load against
// the backend with the given cookies, and renders the mutated document to w.
func (s *Server) buildPage(ctx context.Context, w io.Writer, cookies []*http.Cookie, load loadFunc) error {
	var shell bytes.Buffer
	if err := s.templates.ExecuteTemplate(&shell, "contact.html", shellData{Owner: s.cfg.Owner}); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	doc, err := htmldoc.Parse(&shell)
	if err != nil {
		return fmt.Errorf("parsing page: %w", err)
	}
	b := page.Bind(doc)
	if missing := b.Missing(); len(missing) > 0 {
		slog.Warn("page markup is missing elements", "ids", missing)
	}

	api, err := client.New(s.cfg.BackendURL,
		client.WithCookies(cookies),
		client.WithTimeout(s.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("creating backend client: %w", err)
	}

	load(ctx, api, b)

	return doc.Render(w)
}

// maxComments resolves the visitor's comment limit: the numComments field if
// submitted (and remembered), else the saved preference, else the default.
func (s *Server) maxComments(w http.ResponseWriter, r *http.Request) int {
	var visitor string
	if s.prefs != nil {
		visitor = prefs.VisitorID(w, r)
	}

	if raw := r.FormValue("numComments"); raw != "" {
		n := comment.ParseMaxComments(raw, s.cfg.MaxComments)
		if visitor != "" {
			if err := s.prefs.SetMaxComments(visitor, n); err != nil {
				slog.Warn("saving comment limit", "visitor", visitor, "error", err)
			}
		}
		return n
	}

	if visitor != "" {
		n, ok, err := s.prefs.MaxComments(visitor)
		if err != nil {
			slog.Warn("reading comment limit", "visitor", visitor, "error", err)
		} else if ok {
			return n
		}
	}
	return s.cfg.MaxComments
}

func showAlert(b *page.Bindings, msg string) {
	el, ok := b.Doc.ElementByID(alertID)
	if !ok {
		slog.Warn("no alert region for message", "message", msg)
		return
	}
	el.SetText(msg)
	el.SetHidden(false)
}
