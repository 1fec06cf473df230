package fetchers

import (
	"context"
	"strings"

	"github.com/codequal/codequal-api/pkg/worker/analytics"
	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
	"github.com/pkg/errors"
)

var ErrNoBranchOrRepo = errors.New("repo or branch not found")

type Git struct{}

func NewGit() *Git {
	return &Git{}
}

func (gf Git) Fetch(ctx context.Context, repo *Repo, exec executors.Executor) error {
	args := []string{"clone", "-q", "--depth", "1", "--branch",
		repo.Ref, repo.CloneURL, "."}
	out, err := exec.Run(ctx, "git", args...)
	if err != nil {
		errText := err.Error()
		if out != nil {
			errText += "\n" + out.StdOut
		}

		noBranchOrRepo := strings.Contains(errText, "could not read Username for") ||
			strings.Contains(errText, "Could not find remote branch") ||
			strings.Contains(errText, "Repository not found")
		if noBranchOrRepo {
			return errors.Wrap(ErrNoBranchOrRepo, err.Error())
		}

		return errors.Wrapf(err, "can't run git cmd %v: %s", args, errText)
	}

	// some repos vendor deps in submodules, vet needs them to typecheck
	if out, err := exec.Run(ctx, "git", "submodule", "init"); err != nil {
		analytics.Log(ctx).Warnf("Failed to init git submodule: %s, %v", err, out)
		return nil
	}
	if out, err := exec.Run(ctx, "git", "submodule", "update", "--init", "--recursive"); err != nil {
		analytics.Log(ctx).Warnf("Failed to update git submodule: %s, %v", err, out)
		return nil
	}

	return nil
}
