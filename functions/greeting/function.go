// Package greeting exposes the greeting payload as an HTTP Cloud Function.
package greeting

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// RFC3339Millis matches the service's timestamp format.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

const (
	message = "Hello DevOps World!"
	version = "1.0.0"
)

func init() {
	functions.HTTP("Greeting", handleGreeting)
}

// Response mirrors the service's GET / payload.
type Response struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

var now = time.Now

func handleGreeting(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Response{
		Message:   message,
		Version:   version,
		Timestamp: now().UTC().Format(RFC3339Millis),
	})
}
