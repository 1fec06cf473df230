package processors

import (
	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
	"github.com/codequal/codequal-api/pkg/worker/lib/fetchers"
	"github.com/pkg/errors"
)

// Factory builds a processor with a fresh temp work dir per task.
type Factory struct {
	cfg Config
}

func NewFactory(cfg Config) *Factory {
	return &Factory{cfg: cfg}
}

func (f Factory) BuildCodeProcessor() (*Code, func(), error) {
	exec, err := executors.NewTempDirShell("analyze.code")
	if err != nil {
		return nil, nil, errors.Wrap(err, "can't build temp dir executor")
	}

	return NewCode(f.cfg, exec), exec.Clean, nil
}

func (f Factory) BuildRepoProcessor() (*Repo, func(), error) {
	exec, err := executors.NewTempDirShell("analyze.repo")
	if err != nil {
		return nil, nil, errors.Wrap(err, "can't build temp dir executor")
	}

	return NewRepo(f.cfg, exec, fetchers.NewGit()), exec.Clean, nil
}
