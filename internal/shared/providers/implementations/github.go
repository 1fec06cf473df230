package implementations

import (
	"context"
	"net/http"
	"net/url"

	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/internal/shared/providers/provider"
	"github.com/codequal/codequal-api/pkg/api/models"
	"github.com/google/go-github/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Check the struct is implementing the Provider interface.
var _ provider.Provider = &Github{}

const GithubProviderName = "github.com"

type Github struct {
	auth    *models.Auth
	baseURL *url.URL
	log     logutil.Log
}

func NewGithub(auth *models.Auth, log logutil.Log) *Github {
	return &Github{
		auth: auth,
		log:  log,
	}
}

func (p Github) Name() string {
	return GithubProviderName
}

func (p *Github) SetBaseURL(s string) error {
	baseURL, err := url.Parse(s)
	if err != nil {
		return errors.Wrap(err, "failed to parse url")
	}

	p.baseURL = baseURL
	return nil
}

func (p Github) client(ctx context.Context) *github.Client {
	at := p.auth.AccessToken
	if p.auth.PrivateAccessToken != "" {
		at = p.auth.PrivateAccessToken
	}

	var hc *http.Client
	if at != "" { // anonymous clients resolve only public repos
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{
				AccessToken: at,
			},
		)
		hc = oauth2.NewClient(ctx, ts)
	}

	c := github.NewClient(hc)
	if p.baseURL != nil {
		c.BaseURL = p.baseURL
	}

	return c
}

func (p Github) unwrapError(err error) error {
	if er, ok := err.(*github.ErrorResponse); ok {
		if er.Response.StatusCode == http.StatusNotFound {
			return provider.ErrNotFound
		}
		if er.Response.StatusCode == http.StatusUnauthorized {
			return provider.ErrUnauthorized
		}
	}

	return err
}

func parseGithubRepository(r *github.Repository) *provider.Repo {
	return &provider.Repo{
		ID:            r.GetID(),
		FullName:      r.GetFullName(),
		IsPrivate:     r.GetPrivate(),
		DefaultBranch: r.GetDefaultBranch(),
		Language:      r.GetLanguage(),
	}
}

func (p Github) GetRepoByName(ctx context.Context, owner, repo string) (*provider.Repo, error) {
	r, _, err := p.client(ctx).Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, p.unwrapError(err)
	}

	return parseGithubRepository(r), nil
}

func (p Github) GetBranch(ctx context.Context, owner, repo, branch string) (*provider.Branch, error) {
	grb, _, err := p.client(ctx).Repositories.GetBranch(ctx, owner, repo, branch)
	if err != nil {
		return nil, p.unwrapError(err)
	}

	headCommit := grb.GetCommit()
	return &provider.Branch{
		Name:          grb.GetName(),
		HeadCommitSHA: headCommit.GetSHA(),
		CommitMessage: headCommit.GetCommit().GetMessage(),
		CommitAuthor:  headCommit.GetCommit().GetAuthor().GetName(),
	}, nil
}
