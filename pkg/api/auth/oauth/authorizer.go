package oauth

import (
	"net/url"

	"github.com/codequal/codequal-api/internal/api/apierrors"
	"github.com/codequal/codequal-api/internal/api/session"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/markbates/goth"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

const sessType = "oauth"

type Authorizer struct {
	providerName string
	provider     goth.Provider
	sessFactory  *session.Factory
	log          logutil.Log
}

func NewAuthorizer(providerName string, provider goth.Provider,
	sessFactory *session.Factory, log logutil.Log) *Authorizer {

	return &Authorizer{
		providerName: providerName,
		provider:     provider,
		sessFactory:  sessFactory,
		log:          log,
	}
}

// RedirectToProvider starts the OAuth flow: it saves the provider session
// and responds with a redirect to the provider's consent page.
func (a Authorizer) RedirectToProvider(sctx *session.RequestContext) error {
	state := uuid.NewV4().String()

	gothSess, err := a.provider.BeginAuth(state)
	if err != nil {
		return errors.Wrapf(err, "failed to begin oauth for provider %s", a.providerName)
	}

	authURL, err := gothSess.GetAuthURL()
	if err != nil {
		return errors.Wrap(err, "failed to get oauth url")
	}

	sess, err := a.sessFactory.Build(sctx, sessType)
	if err != nil {
		return errors.Wrap(err, "failed to build oauth session")
	}
	sess.Set(a.providerName, gothSess.Marshal())

	return apierrors.NewTemporaryRedirectError(authURL)
}

// HandleProviderCallback finishes the OAuth flow: it validates the state,
// exchanges the code for an access token and fetches the provider user.
func (a Authorizer) HandleProviderCallback(sctx *session.RequestContext, state, code string) (*goth.User, error) {
	sess, err := a.sessFactory.Build(sctx, sessType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build oauth session")
	}

	marshaledGothSess, ok := sess.GetValue(a.providerName).(string)
	if !ok {
		return nil, errors.New("no saved oauth session")
	}

	gothSess, err := a.provider.UnmarshalSession(marshaledGothSess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal saved oauth session")
	}

	if err = a.validateState(gothSess, state); err != nil {
		return nil, err
	}

	if _, err = gothSess.Authorize(a.provider, url.Values{"code": {code}}); err != nil {
		return nil, errors.Wrap(err, "failed to authorize oauth session")
	}

	gu, err := a.provider.FetchUser(gothSess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user from provider")
	}

	sess.Delete()
	return &gu, nil
}

// validateState protects against CSRF attacks: the state from the callback
// must match the one embedded into the auth url on flow start.
func (a Authorizer) validateState(gothSess goth.Session, state string) error {
	authURL, err := gothSess.GetAuthURL()
	if err != nil {
		return errors.Wrap(err, "failed to get auth url from saved session")
	}

	u, err := url.Parse(authURL)
	if err != nil {
		return errors.Wrap(err, "failed to parse auth url")
	}

	originalState := u.Query().Get("state")
	if originalState != "" && originalState != state {
		return errors.New("oauth state mismatch")
	}

	return nil
}
