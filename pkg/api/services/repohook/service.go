package repohook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/codequal/codequal-api/internal/api/apierrors"
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/api/models"
	"github.com/codequal/codequal-api/pkg/api/request"
	queueanalyzes "github.com/codequal/codequal-api/pkg/api/workers/primaryqueue/analyzes"
	gh "github.com/google/go-github/github"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type GithubWebhook struct {
	EventType    string `request:"X-GitHub-Event,header,"`
	DeliveryGUID string `request:"X-GitHub-Delivery,header,"`
	Signature    string `request:"X-Hub-Signature-256,header,optional"`
}

func (w GithubWebhook) FillLogContext(lctx logutil.Context) {
	lctx["event_type"] = w.EventType
	lctx["delivery_guid"] = w.DeliveryGUID
}

type WebhookResponse struct {
	Status       string `json:"status"`
	AnalysisGUID string `json:"analysis_guid,omitempty"`
}

type Service interface {
	//url:/v1/hooks/github method:POST
	HandleGithubWebhook(rc *request.AnonymousContext, req *GithubWebhook, body request.Body) (*WebhookResponse, error)
}

type BasicService struct {
	Cfg         config.Config
	LaunchQueue *queueanalyzes.LauncherProducer
}

func (s BasicService) HandleGithubWebhook(rc *request.AnonymousContext,
	req *GithubWebhook, body request.Body) (*WebhookResponse, error) {

	if err := s.verifySignature(req, body); err != nil {
		return nil, err
	}

	switch req.EventType {
	case "ping":
		rc.Log.Infof("Got ping webhook")
		return &WebhookResponse{Status: "ok"}, nil
	case "push":
		return s.handleGithubPushWebhook(rc, req, body)
	}

	rc.Log.Infof("Ignoring github webhook event type %s", req.EventType)
	return &WebhookResponse{Status: "ignored"}, nil
}

// verifySignature checks the X-Hub-Signature-256 header against an HMAC of
// the raw body. The check is off until GITHUB_WEBHOOK_SECRET is configured.
func (s BasicService) verifySignature(req *GithubWebhook, body request.Body) error {
	secret := s.Cfg.GetString("GITHUB_WEBHOOK_SECRET")
	if secret == "" {
		return nil
	}

	if req.Signature == "" {
		return errors.Wrap(apierrors.ErrNotAuthorized, "missing X-Hub-Signature-256 header")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body) //nolint:errcheck
	expectedSignature := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expectedSignature), []byte(req.Signature)) {
		return errors.Wrap(apierrors.ErrNotAuthorized, "invalid X-Hub-Signature-256 header")
	}

	return nil
}

func (s BasicService) handleGithubPushWebhook(rc *request.AnonymousContext,
	req *GithubWebhook, body request.Body) (*WebhookResponse, error) {

	var payload gh.PushEvent
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrapf(apierrors.ErrBadRequest, "invalid payload json: %s", err)
	}

	if payload.GetDeleted() {
		rc.Log.Infof("Got push webhook for deleted ref %s, skip it", payload.GetRef())
		return &WebhookResponse{Status: "ignored"}, nil
	}

	headCommit := payload.GetHeadCommit()
	if headCommit.GetID() == "" {
		rc.Log.Infof("Got push webhook without head commit, skip it")
		return &WebhookResponse{Status: "ignored"}, nil
	}

	repoName := strings.ToLower(payload.GetRepo().GetFullName())
	if repoName == "" {
		return nil, errors.Wrap(apierrors.ErrBadRequest, "push payload has no repository full name")
	}

	analysis := models.Analysis{
		GUID:          uuid.NewV4().String(),
		Status:        models.AnalysisStatusPending,
		Language:      "go",
		Repository:    repoName,
		Branch:        strings.TrimPrefix(payload.GetRef(), "refs/heads/"),
		CommitSHA:     headCommit.GetID(),
		CommitMessage: headCommit.GetMessage(),
		CommitAuthor:  headCommit.GetAuthor().GetName(),
	}
	if err := analysis.Create(rc.DB); err != nil {
		return nil, errors.Wrap(err, "can't create analysis")
	}

	if err := s.LaunchQueue.Put(analysis.GUID); err != nil {
		return nil, errors.Wrap(err, "failed to put to launch queue")
	}

	rc.Log.Infof("Created analysis %s for push webhook %s of %s@%s",
		analysis.GUID, req.DeliveryGUID, analysis.Repository, analysis.Branch)
	return &WebhookResponse{
		Status:       "ok",
		AnalysisGUID: analysis.GUID,
	}, nil
}
