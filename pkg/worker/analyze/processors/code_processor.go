package processors

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/codequal/codequal-api/pkg/analyzes/metrics"
	"github.com/codequal/codequal-api/pkg/api/models"
	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
	"github.com/pkg/errors"
)

// Code processes direct code submissions: the submitted snippet is written
// to a language-appropriate file in a temp work dir and analyzed there.
type Code struct {
	analysisProcessor
}

func NewCode(cfg Config, exec executors.Executor) *Code {
	return &Code{
		analysisProcessor: analysisProcessor{
			Config: cfg,
			exec:   exec,
		},
	}
}

func (p *Code) Process(ctx context.Context, analysisGUID string) error {
	return p.process(ctx, analysisGUID, p.prepare)
}

func (p *Code) prepare(ctx context.Context, analysis *models.Analysis) (string, error) {
	if strings.TrimSpace(analysis.Code) == "" {
		return "", errors.Wrap(ErrNothingToAnalyze, "empty code was submitted")
	}

	fileName := analysis.FilePath
	if fileName == "" {
		fileName = metrics.Lookup(analysis.Language).FileName
	}
	fileName = filepath.Base(fileName) // don't allow escaping the work dir

	path := filepath.Join(p.exec.WorkDir(), fileName)
	if err := os.WriteFile(path, []byte(analysis.Code), 0644); err != nil {
		return "", errors.Wrapf(err, "can't write code to %s", path)
	}

	return analysis.Code, nil
}
