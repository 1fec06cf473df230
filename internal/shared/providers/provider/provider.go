package provider

import (
	"context"
)

type Provider interface {
	Name() string

	SetBaseURL(url string) error

	GetRepoByName(ctx context.Context, owner, repo string) (*Repo, error)
	GetBranch(ctx context.Context, owner, repo, branch string) (*Branch, error)
}
