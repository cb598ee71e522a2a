package entity

// TaskRequest is the client-submitted unit of work for /generate.
type TaskRequest struct {
	TaskName string         `json:"task_name" validate:"required"`
	Payload  map[string]any `json:"payload"`
}

// TaskResult is the provider's response, passed through to the client unchanged.
type TaskResult map[string]any
