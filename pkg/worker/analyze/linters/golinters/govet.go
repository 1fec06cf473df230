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

const goVetName = "govet"

type GoVet struct{}

func (g GoVet) Name() string {
	return goVetName
}

func (g GoVet) Run(ctx context.Context, exec executors.Executor) (*result.Result, error) {
	runRes, runErr := exec.Run(ctx, "go", "vet", "-json", "./...")

	// go vet exits non-zero when it finds issues, parse the output first
	out := ""
	if runRes != nil {
		out = runRes.StdOut
	}

	issues, parseErr := parseGoVetOutput(out)
	if parseErr != nil {
		if runErr != nil {
			return nil, &errorutils.InternalError{
				PublicDesc:  "can't run go vet",
				PrivateDesc: fmt.Sprintf("can't run go vet: %s: %s", runErr, out),
			}
		}

		return nil, &errorutils.InternalError{
			PublicDesc:  "can't parse go vet output",
			PrivateDesc: fmt.Sprintf("can't parse go vet output %q: %s", out, parseErr),
		}
	}

	if len(issues) == 0 && runErr != nil {
		// non-zero exit without diagnostics: compilation or setup failure
		return nil, &errorutils.BadInputError{
			PublicDesc: fmt.Sprintf("can't run go vet: %s", firstOutputLine(out)),
		}
	}

	return &result.Result{Issues: issues}, nil
}

type goVetDiagnostic struct {
	Posn    string `json:"posn"`
	Message string `json:"message"`
}

// parseGoVetOutput parses `go vet -json` output: `# pkg` comment lines
// interleaved with JSON objects mapping package -> analyzer -> diagnostics.
func parseGoVetOutput(out string) ([]result.Issue, error) {
	var jsonLines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		jsonLines = append(jsonLines, line)
	}

	var issues []result.Issue
	dec := json.NewDecoder(strings.NewReader(strings.Join(jsonLines, "\n")))
	for dec.More() {
		var perPackage map[string]map[string][]goVetDiagnostic
		if err := dec.Decode(&perPackage); err != nil {
			return nil, err
		}

		for _, perAnalyzer := range perPackage {
			for analyzer, diags := range perAnalyzer {
				for _, d := range diags {
					file, line, column := parsePosn(d.Posn)
					issues = append(issues, result.Issue{
						FromTool: goVetName,
						Type:     result.TypeWarning,
						RuleID:   analyzer,
						Message:  d.Message,
						File:     file,
						Line:     line,
						Column:   column,
					})
				}
			}
		}
	}

	return issues, nil
}

// parsePosn splits "file.go:10:2" keeping colons in the file path intact.
func parsePosn(posn string) (file string, line, column int) {
	parts := strings.Split(posn, ":")
	if len(parts) < 3 {
		return posn, 0, 0
	}

	line, lineErr := strconv.Atoi(parts[len(parts)-2])
	column, colErr := strconv.Atoi(parts[len(parts)-1])
	if lineErr != nil || colErr != nil {
		return posn, 0, 0
	}

	return strings.Join(parts[:len(parts)-2], ":"), line, column
}

func firstOutputLine(out string) string {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if line != "" {
			return line
		}
	}

	return "unknown error"
}
