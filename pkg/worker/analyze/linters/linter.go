package linters

import (
	"context"

	"github.com/codequal/codequal-api/pkg/worker/analyze/linters/result"
	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
)

type Linter interface {
	Run(ctx context.Context, exec executors.Executor) (*result.Result, error)
	Name() string
}
