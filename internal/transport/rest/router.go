package rest

import (
	"net/http"

	"github.com/heartmarshall/wordlookup/internal/transport/middleware"
)

// NewRouter registers every route and wraps the mux in mw.
// Unmatched paths and methods fall through to the JSON 404.
func NewRouter(lookupH *LookupHandler, healthH *HealthHandler, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /search", lookupH.Search)
	mux.HandleFunc("GET /prefix", lookupH.Prefix)
	mux.HandleFunc("GET /info", lookupH.Info)

	mux.HandleFunc("GET /live", healthH.Live)
	mux.HandleFunc("GET /ready", healthH.Ready)
	mux.HandleFunc("GET /health", healthH.Health)

	mux.HandleFunc("/", lookupH.NotFound)

	if mw == nil {
		return mux
	}
	return mw(mux)
}
