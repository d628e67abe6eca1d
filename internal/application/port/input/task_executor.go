package input

import (
	"context"

	"billing-agent/internal/domain/entity"
)

type ExecuteResult struct {
	FinalAnswer string
	Iterations  int
}

type TaskExecutor interface {
	Execute(ctx context.Context, session entity.Session, task string) (*ExecuteResult, error)
}
