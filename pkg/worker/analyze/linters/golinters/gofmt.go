package golinters

import (
	"context"
	"fmt"
	"strings"

	"github.com/codequal/codequal-api/pkg/worker/analyze/linters/result"
	"github.com/codequal/codequal-api/pkg/worker/lib/errorutils"
	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
)

const goFmtName = "gofmt"

type GoFmt struct{}

func (g GoFmt) Name() string {
	return goFmtName
}

func (g GoFmt) Run(ctx context.Context, exec executors.Executor) (*result.Result, error) {
	runRes, err := exec.Run(ctx, "gofmt", "-l", ".")
	if err != nil {
		out := ""
		if runRes != nil {
			out = runRes.StdOut
		}
		return nil, &errorutils.InternalError{
			PublicDesc:  "can't run gofmt",
			PrivateDesc: fmt.Sprintf("can't run gofmt: %s: %s", err, out),
		}
	}

	return &result.Result{Issues: parseGoFmtOutput(runRes.StdOut)}, nil
}

// parseGoFmtOutput handles `gofmt -l` output: one unformatted file per line.
func parseGoFmtOutput(out string) []result.Issue {
	var issues []result.Issue
	for _, line := range strings.Split(out, "\n") {
		file := strings.TrimSpace(line)
		if file == "" {
			continue
		}

		issues = append(issues, result.Issue{
			FromTool: goFmtName,
			Type:     result.TypeWarning,
			Message:  "file is not gofmt-ed",
			File:     file,
		})
	}

	return issues
}
