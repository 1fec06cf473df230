package processors

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/codequal/codequal-api/pkg/analyzes/metrics"
	"github.com/codequal/codequal-api/pkg/api/models"
	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
	"github.com/codequal/codequal-api/pkg/worker/lib/fetchers"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// maxRepoSourcesBytes limits how much repo source text is read for metrics.
const maxRepoSourcesBytes = 4 << 20

// Repo processes repository submissions: the repo is cloned into a temp work
// dir, the tools run over it and metrics are computed from its sources.
type Repo struct {
	analysisProcessor

	fetcher fetchers.Fetcher
}

func NewRepo(cfg Config, exec executors.Executor, fetcher fetchers.Fetcher) *Repo {
	return &Repo{
		analysisProcessor: analysisProcessor{
			Config: cfg,
			exec:   exec,
		},
		fetcher: fetcher,
	}
}

func (p *Repo) Process(ctx context.Context, analysisGUID string) error {
	return p.process(ctx, analysisGUID, p.prepare)
}

func (p *Repo) prepare(ctx context.Context, analysis *models.Analysis) (string, error) {
	cloneURL, err := p.buildCloneURL(analysis)
	if err != nil {
		return "", err
	}

	repo := &fetchers.Repo{
		CloneURL: cloneURL,
		Ref:      analysis.Branch,
	}
	if err := p.fetcher.Fetch(ctx, repo, p.exec); err != nil {
		return "", errors.Wrapf(err, "can't fetch repo %s", analysis.Repository)
	}

	return p.readSources(analysis)
}

// buildCloneURL injects the submitting user's access token so private repos
// can be cloned.
func (p *Repo) buildCloneURL(analysis *models.Analysis) (string, error) {
	token := ""
	if analysis.UserID != nil {
		var auth models.Auth
		err := models.NewAuthQuerySet(p.DB).UserIDEq(*analysis.UserID).OrderDescByID().One(&auth)
		if err != nil && err != gorm.ErrRecordNotFound {
			return "", errors.Wrapf(err, "can't fetch auth for user %d", *analysis.UserID)
		}
		if err == nil {
			token = auth.PrivateAccessToken
			if token == "" {
				token = auth.AccessToken
			}
		}
	}

	return buildCloneURL(analysis.Repository, token), nil
}

func buildCloneURL(repoName, token string) string {
	if token != "" {
		return fmt.Sprintf("https://%s@github.com/%s.git", token, repoName)
	}

	return fmt.Sprintf("https://github.com/%s.git", repoName)
}

// readSources concatenates the cloned files of the analysis language for
// metrics computation.
func (p *Repo) readSources(analysis *models.Analysis) (string, error) {
	lang := metrics.Lookup(analysis.Language)

	var sb strings.Builder
	err := filepath.Walk(p.exec.WorkDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if sb.Len() >= maxRepoSourcesBytes {
			return filepath.SkipDir
		}
		if !hasAnyExtension(path, lang.Extensions) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "can't read %s", path)
		}
		sb.Write(data)
		sb.WriteString("\n")
		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to read cloned sources")
	}

	if sb.Len() == 0 {
		return "", errors.Wrapf(ErrNothingToAnalyze, "no %s files in the repo", lang.Name)
	}

	return sb.String(), nil
}

func hasAnyExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}

	return false
}
