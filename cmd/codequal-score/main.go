package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codequal/codequal-api/pkg/analyzes/metrics"
	"github.com/codequal/codequal-api/pkg/analyzes/scorer"
	"github.com/codequal/codequal-api/pkg/worker/analyze/linters"
	"github.com/codequal/codequal-api/pkg/worker/analyze/linters/golinters"
	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
)

func main() {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("Can't get working dir: %s", err)
	}
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	res, err := score(dir)
	if err != nil {
		log.Fatalf("Can't calculate score for %s: %s", dir, err)
	}

	fmt.Printf("Score: %.2f/100\n", res.Scores.Overall)
	fmt.Printf("  style:           %d/10\n", res.Scores.Style)
	fmt.Printf("  complexity:      %.2f/100\n", res.Scores.Complexity)
	fmt.Printf("  maintainability: %.2f/100\n", res.Scores.Maintainability)
	fmt.Printf("  security:        %.2f/100\n", res.Scores.Security)
	for _, rec := range res.Recommendations {
		fmt.Printf("  - get %d more score: %s\n", rec.ScoreIncrease, rec.Text)
	}
}

func score(dir string) (*scorer.CalcResult, error) {
	shell, err := executors.NewTempDirShell("score")
	if err != nil {
		return nil, fmt.Errorf("can't build executor: %s", err)
	}
	defer shell.Clean()

	e := shell.WithWorkDir(dir)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	lintTools := []linters.Linter{golinters.GoVet{}, golinters.GoFmt{}, golinters.GoSec{}}
	lintRes, err := linters.SimpleRunner{}.Run(ctx, lintTools, e)
	if err != nil {
		return nil, fmt.Errorf("can't run tools: %s", err)
	}
	for _, te := range lintRes.ToolErrors {
		log.Printf("tool %s failed: %s", te.Tool, te.Text)
	}

	code, err := readGoSources(dir)
	if err != nil {
		return nil, fmt.Errorf("can't read sources: %s", err)
	}
	m := metrics.Lookup("go").Compute(code)

	return scorer.Calculator{}.Calc(m, lintRes.IssuesPerTool()), nil
}

func readGoSources(dir string) (string, error) {
	var sb strings.Builder
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == ".git" || info.Name() == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sb.Write(data)
		sb.WriteByte('\n')
		return nil
	})
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}
