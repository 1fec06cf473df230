package implementations

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/codequal/codequal-api/internal/shared/providers/provider"
)

// Check the struct is implementing the Provider interface.
var _ provider.Provider = &StableProvider{}

type StableProvider struct {
	underlying   provider.Provider
	totalTimeout time.Duration
	maxRetries   int
}

func NewStableProvider(underlying provider.Provider, totalTimeout time.Duration, maxRetries int) *StableProvider {
	return &StableProvider{
		underlying:   underlying,
		totalTimeout: totalTimeout,
		maxRetries:   maxRetries,
	}
}

func (p StableProvider) Name() string {
	return p.underlying.Name()
}

func (p StableProvider) SetBaseURL(s string) error {
	return p.underlying.SetBaseURL(s)
}

func (p StableProvider) retry(f func() error) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = p.totalTimeout

	bmr := backoff.WithMaxRetries(b, uint64(p.maxRetries))
	return backoff.Retry(func() error {
		err := f()
		if err != nil && provider.IsPermanentError(err) {
			return backoff.Permanent(err)
		}
		return err
	}, bmr)
}

func (p StableProvider) GetRepoByName(ctx context.Context, owner, repo string) (ret *provider.Repo, err error) {
	_ = p.retry(func() error {
		ret, err = p.underlying.GetRepoByName(ctx, owner, repo)
		return err
	})
	return
}

func (p StableProvider) GetBranch(ctx context.Context, owner, repo, branch string) (ret *provider.Branch, err error) {
	_ = p.retry(func() error {
		ret, err = p.underlying.GetBranch(ctx, owner, repo, branch)
		return err
	})
	return
}
