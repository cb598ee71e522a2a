package output

import (
	"context"

	"nextgen-api/internal/domain/entity"
)

// LLMPort is the outbound boundary to the LLM provider. Implementations return
// entity faults for classified failures (network, provider, timeout).
type LLMPort interface {
	Generate(ctx context.Context, req entity.TaskRequest) (entity.TaskResult, error)
}
