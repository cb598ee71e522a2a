package usecase

import (
	"context"

	"nextgen-api/internal/application/port/input"
	"nextgen-api/internal/application/port/output"
	"nextgen-api/internal/domain/entity"
)

var _ input.TaskProcessor = (*ProcessTaskUseCase)(nil)

type ProcessTaskUseCase struct {
	llm    output.LLMPort
	logger output.LoggerPort
}

func NewProcessTaskUseCase(llm output.LLMPort, logger output.LoggerPort) *ProcessTaskUseCase {
	return &ProcessTaskUseCase{
		llm:    llm,
		logger: logger,
	}
}

// Process forwards the task to the LLM provider. One best-effort call, no
// retries. Errors that are not already classified come back as generic faults.
func (uc *ProcessTaskUseCase) Process(ctx context.Context, req entity.TaskRequest) (entity.TaskResult, error) {
	if req.TaskName == "" {
		return nil, entity.NewInvalidPayloadFault("task_name must not be empty")
	}

	uc.logger.Info("Processing task", "task_name", req.TaskName)

	result, err := uc.llm.Generate(ctx, req)
	if err != nil {
		fault := entity.WrapFault(err)
		uc.logger.Error("Task failed", "task_name", req.TaskName, "kind", string(fault.Kind), "detail", fault.Detail)
		return nil, fault
	}

	uc.logger.Debug("Task completed", "task_name", req.TaskName)
	return result, nil
}
