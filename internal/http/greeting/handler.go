// Package greeting serves the root greeting endpoint.
package greeting

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-devops/internal/platform/logging"
	"github.com/janisto/hello-devops/internal/platform/timeutil"
)

const (
	// Message is the fixed greeting text.
	Message = "Hello DevOps World!"
	// Version is reported in every greeting.
	Version = "1.0.0"
)

// Register wires the greeting route into api using the wall clock.
func Register(api huma.API) {
	RegisterWithClock(api, timeutil.System)
}

// RegisterWithClock wires the greeting route, stamping each response with now().
func RegisterWithClock(api huma.API, now timeutil.Clock) {
	huma.Register(api, huma.Operation{
		OperationID: "get-greeting",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Get the greeting",
		Description: "Returns the greeting message, the service version and the time the response was generated.",
		Tags:        []string{"Greeting"},
	}, func(ctx context.Context, _ *struct{}) (*GetOutput, error) {
		ts := timeutil.FormatMillis(now())
		applog.LogInfo(ctx, "greeting served", zap.String("timestamp", ts))
		return &GetOutput{Body: Data{
			Message:   Message,
			Version:   Version,
			Timestamp: ts,
		}}, nil
	})
}
