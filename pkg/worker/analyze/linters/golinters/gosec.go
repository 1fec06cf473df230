package golinters

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/codequal/codequal-api/pkg/worker/analyze/linters/result"
	"github.com/codequal/codequal-api/pkg/worker/lib/errorutils"
	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
)

const goSecName = "gosec"

type GoSec struct{}

func (g GoSec) Name() string {
	return goSecName
}

func (g GoSec) Run(ctx context.Context, exec executors.Executor) (*result.Result, error) {
	runRes, runErr := exec.Run(ctx, "gosec", "-fmt=json", "-quiet", "./...")

	// gosec exits non-zero when it finds issues, parse the output first
	out := ""
	if runRes != nil {
		out = runRes.StdOut
	}

	issues, parseErr := parseGoSecOutput(out)
	if parseErr != nil {
		if runErr != nil {
			return nil, &errorutils.InternalError{
				PublicDesc:  "can't run gosec",
				PrivateDesc: fmt.Sprintf("can't run gosec: %s: %s", runErr, out),
			}
		}

		return nil, &errorutils.InternalError{
			PublicDesc:  "can't parse gosec output",
			PrivateDesc: fmt.Sprintf("can't parse gosec output %q: %s", out, parseErr),
		}
	}

	return &result.Result{Issues: issues}, nil
}

type goSecIssue struct {
	Severity   string `json:"severity"`
	Confidence string `json:"confidence"`
	RuleID     string `json:"rule_id"`
	Details    string `json:"details"`
	File       string `json:"file"`
	Line       string `json:"line"`
	Column     string `json:"column"`
}

type goSecReport struct {
	Issues []goSecIssue `json:"Issues"`
}

func parseGoSecOutput(out string) ([]result.Issue, error) {
	// gosec may print non-json noise before the report
	start := strings.Index(out, "{")
	if start == -1 {
		return nil, nil
	}

	var report goSecReport
	if err := json.Unmarshal([]byte(out[start:]), &report); err != nil {
		return nil, err
	}

	var issues []result.Issue
	for _, i := range report.Issues {
		issues = append(issues, result.Issue{
			FromTool: goSecName,
			Type:     goSecIssueType(i.Severity),
			RuleID:   i.RuleID,
			Message:  fmt.Sprintf("%s (severity: %s, confidence: %s)", i.Details, i.Severity, i.Confidence),
			File:     i.File,
			Line:     parseGoSecLine(i.Line),
			Column:   parseGoSecLine(i.Column),
		})
	}

	return issues, nil
}

func goSecIssueType(severity string) string {
	switch strings.ToUpper(severity) {
	case "HIGH":
		return result.TypeError
	case "LOW":
		return result.TypeInfo
	default:
		return result.TypeWarning
	}
}

// parseGoSecLine handles both "10" and range values like "10-12".
func parseGoSecLine(s string) int {
	if idx := strings.Index(s, "-"); idx != -1 {
		s = s[:idx]
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}
