package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/service/lookup"
	"github.com/heartmarshall/wordlookup/internal/transport/middleware"
)

type lookupService interface {
	Search(input lookup.SearchInput) (lookup.SearchResult, error)
	Prefix(input lookup.PrefixInput) (lookup.PrefixResult, error)
	Info() lookup.Info
}

// LookupHandler serves the word query endpoints.
type LookupHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{svc: svc, log: logger.With("handler", "lookup")}
}

// Search handles GET /search?word=&lang=&light=.
func (h *LookupHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res, err := h.svc.Search(lookup.SearchInput{
		Word:  q.Get("word"),
		Lang:  optional(q, "lang"),
		Shape: lookup.ParseLight(q.Get("light")),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res.Body())
}

// Prefix handles GET /prefix?prefix=&lang=&limit=&light=.
func (h *LookupHandler) Prefix(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res, err := h.svc.Prefix(lookup.PrefixInput{
		Prefix: q.Get("prefix"),
		Lang:   optional(q, "lang"),
		Limit:  lookup.ParseLimit(q.Get("limit")),
		Shape:  lookup.ParseLight(q.Get("light")),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res.Body())
}

// Info handles GET /info.
func (h *LookupHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Info())
}

// NotFound answers any request that matched no route.
func (h *LookupHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, middleware.ErrorResponse{
		Success: false,
		Error:   "route not found",
		Info:    "see GET /info for available routes",
	})
}

func (h *LookupHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrInvalidLanguage):
		writeError(w, http.StatusBadRequest, "invalid language")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// optional returns a pointer to the first value of key, or nil when the
// key is absent. A present but empty value yields a pointer to "".
func optional(q url.Values, key string) *string {
	vs, ok := q[key]
	if !ok || len(vs) == 0 {
		return nil
	}
	return &vs[0]
}
