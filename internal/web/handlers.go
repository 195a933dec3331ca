package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/sloppy/catchmap/internal/observability"
	"github.com/sloppy/catchmap/internal/tooltip"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, indexPage(s.Tooltips.Names()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *Server) handleTooltipNames(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, map[string][]string{"tooltips": s.Tooltips.Names()}, http.StatusOK)
}

// handleTooltip renders one datum. An absent datum answers 204 so the
// caller shows nothing.
func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	renderer, found := s.Tooltips.Lookup(name)
	if !found {
		http.Error(w, fmt.Sprintf("%v: %s", tooltip.ErrUnknownTooltip, name), http.StatusNotFound)
		return
	}
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	markup, ok, err := s.renderObserved(name, renderer, body)
	if err != nil {
		s.badRequest(w, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.render(w, r, templ.Raw(markup))
}

// handleTooltipBatch renders an array of data and answers a JSON array of
// fragments, with null where a datum was absent.
func (s *Server) handleTooltipBatch(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	renderer, found := s.Tooltips.Lookup(name)
	if !found {
		http.Error(w, fmt.Sprintf("%v: %s", tooltip.ErrUnknownTooltip, name), http.StatusNotFound)
		return
	}
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	var data []json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil {
		s.badRequest(w, fmt.Errorf("batch body must be a JSON array: %w", err))
		return
	}

	results := make([]*string, len(data))
	for i, datum := range data {
		markup, ok, err := s.renderObserved(name, renderer, datum)
		if err != nil {
			s.badRequest(w, fmt.Errorf("item %d: %w", i, err))
			return
		}
		if ok {
			results[i] = &markup
		}
	}
	s.jsonResponse(w, results, http.StatusOK)
}

func (s *Server) renderObserved(name string, renderer tooltip.Renderer, datum json.RawMessage) (string, bool, error) {
	start := time.Now()
	markup, ok, err := renderer(datum)
	outcome := observability.OutcomeRendered
	switch {
	case err != nil:
		outcome = observability.OutcomeRejected
	case !ok:
		outcome = observability.OutcomeAbsent
	}
	s.Metrics.ObserveRender(name, outcome, time.Since(start))
	return markup, ok, err
}
