package greeting

// Data is the greeting payload.
type Data struct {
	Message   string `json:"message" doc:"Greeting message" example:"Hello DevOps World!"`
	Version   string `json:"version" doc:"Service version" example:"1.0.0"`
	Timestamp string `json:"timestamp" format:"date-time" doc:"Time the greeting was generated, RFC 3339 UTC with millisecond precision" example:"2024-01-15T10:30:00.000Z"`
}

// GetOutput is the response wrapper for GET /.
type GetOutput struct {
	Body Data
}
