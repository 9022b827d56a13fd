package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/wordlookup/internal/dictionary"
	"github.com/heartmarshall/wordlookup/internal/domain"
)

// dictionaryStatus is the read-only view of the store the probes need.
type dictionaryStatus interface {
	Languages() []domain.Language
	Stats(lang domain.Language) (dictionary.LoadStats, bool)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   dictionaryStatus
	version string
	started time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store dictionaryStatus, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version, started: time.Now()}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one loaded dictionary.
type CompStatus struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
	Source string `json:"source,omitempty"`
	Digest string `json:"digest,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 once at least one dictionary is
// loaded, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.ready() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports version, uptime and every dictionary with its size and digest.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if h.ready() {
		for _, lang := range h.store.Languages() {
			stats, _ := h.store.Stats(lang)
			components["dictionary:"+lang.String()] = CompStatus{
				Status: "ok",
				Words:  stats.Words,
				Source: stats.Source,
				Digest: stats.Digest,
			}
		}
	} else {
		overallStatus = "down"
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Uptime:     time.Since(h.started).Round(time.Second).String(),
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) ready() bool {
	return h.store != nil && len(h.store.Languages()) > 0
}
