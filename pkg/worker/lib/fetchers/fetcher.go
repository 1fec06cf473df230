package fetchers

import (
	"context"

	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
)

type Repo struct {
	CloneURL string
	Ref      string
}

type Fetcher interface {
	Fetch(ctx context.Context, repo *Repo, exec executors.Executor) error
}
