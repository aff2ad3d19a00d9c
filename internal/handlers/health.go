package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string           `json:"status"`
	Timestamp   string           `json:"timestamp"`
	Uptime      string           `json:"uptime"`
	ActiveViews int              `json:"active_views"`
	Checks      map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health reports the view store and the background scheduler. It does not
// touch the chat widget backend. A stopped scheduler reports degraded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	storeCheck := Check{Status: "healthy"}
	count, err := h.views.Count(ctx)
	if err != nil {
		storeCheck = Check{Status: "unhealthy", Message: err.Error()}
	}

	jobsCheck := Check{Status: "healthy", Message: strings.Join(h.jobs.ListTasks(), ", ")}
	if !h.jobs.IsRunning() {
		jobsCheck.Status = "stopped"
	}

	status := storeCheck.Status
	if status == "healthy" && jobsCheck.Status != "healthy" {
		status = "degraded"
	}

	response := HealthResponse{
		Status:      status,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.startAt).String(),
		ActiveViews: count,
		Checks: map[string]Check{
			"view_store": storeCheck,
			"scheduler":  jobsCheck,
		},
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}
