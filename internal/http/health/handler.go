// Package health serves the liveness probe. It is a plain handler mounted on
// the router so probes keep working independently of the API layer.
package health

import (
	"encoding/json"
	"net/http"
)

// StatusHealthy is the only status the probe reports. The process answering
// is the liveness signal.
const StatusHealthy = "healthy"

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status"`
}

// Handler answers GET and HEAD /health. HEAD gets headers only.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_ = json.NewEncoder(w).Encode(Response{Status: StatusHealthy})
}
