package input

import (
	"context"

	"nextgen-api/internal/domain/entity"
)

// TaskProcessor accepts a validated task request and produces the provider's
// result, or an entity fault describing why it could not.
type TaskProcessor interface {
	Process(ctx context.Context, req entity.TaskRequest) (entity.TaskResult, error)
}
