package linters

import (
	"context"

	"github.com/codequal/codequal-api/pkg/worker/analytics"
	"github.com/codequal/codequal-api/pkg/worker/analyze/linters/result"
	"github.com/codequal/codequal-api/pkg/worker/lib/errorutils"
	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
)

type Runner interface {
	Run(ctx context.Context, linters []Linter, exec executors.Executor) (*result.Result, error)
}

type SimpleRunner struct {
}

// Run executes all linters and merges their results. A crashed or missing
// tool becomes a tool error on the merged result, not an analysis failure.
func (r SimpleRunner) Run(ctx context.Context, linters []Linter, exec executors.Executor) (*result.Result, error) {
	var merged result.Result
	for _, linter := range linters {
		res, err := linter.Run(ctx, exec)
		if err != nil {
			merged.ToolErrors = append(merged.ToolErrors, result.ToolError{
				Tool: linter.Name(),
				Text: describeToolError(err),
			})
			analytics.Log(ctx).Warnf("Tool %s failed: %s", linter.Name(), err)
			continue
		}

		merged.Issues = append(merged.Issues, res.Issues...)
		merged.ToolErrors = append(merged.ToolErrors, res.ToolErrors...)
	}

	return &merged, nil
}

func describeToolError(err error) string {
	if ierr, ok := err.(*errorutils.InternalError); ok {
		return ierr.PublicDesc
	}
	if berr, ok := err.(*errorutils.BadInputError); ok {
		return berr.PublicDesc
	}

	return err.Error()
}
