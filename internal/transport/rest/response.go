package rest

import (
	"net/http"

	"github.com/heartmarshall/wordlookup/internal/transport/middleware"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	middleware.WriteJSON(w, status, v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	middleware.WriteError(w, status, message)
}
