package analyzes

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/codequal/codequal-api/internal/api/apierrors"
	"github.com/codequal/codequal-api/internal/api/events"
	"github.com/codequal/codequal-api/internal/shared/cache"
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/internal/shared/providers"
	"github.com/codequal/codequal-api/internal/shared/providers/provider"
	"github.com/codequal/codequal-api/pkg/api/auth"
	"github.com/codequal/codequal-api/pkg/api/models"
	"github.com/codequal/codequal-api/pkg/api/request"
	"github.com/codequal/codequal-api/pkg/api/returntypes"
	queueanalyzes "github.com/codequal/codequal-api/pkg/api/workers/primaryqueue/analyzes"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type createCodePayload struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	FileName string `json:"filename"`
}

func (p createCodePayload) FillLogContext(lctx logutil.Context) {
	lctx["language"] = p.Language
	lctx["code_size"] = len(p.Code)
}

type createRepoPayload struct {
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
}

func (p createRepoPayload) FillLogContext(lctx logutil.Context) {
	lctx["repo"] = p.Repo
	lctx["branch"] = p.Branch
}

type historyRequest struct {
	Limit      int    `request:"limit,urlParam,optional"`
	Offset     int    `request:"offset,urlParam,optional"`
	Repository string `request:"repository,urlParam,optional"`
}

func (hr historyRequest) FillLogContext(lctx logutil.Context) {
	lctx["limit"] = hr.Limit
	lctx["offset"] = hr.Offset
	if hr.Repository != "" {
		lctx["repository"] = hr.Repository
	}
}

type updateLabelPayload struct {
	Label int `json:"label"`
}

func (p updateLabelPayload) FillLogContext(lctx logutil.Context) {
	lctx["label"] = p.Label
}

type Service interface {
	//url:/v1/analyzes method:POST
	CreateCodeAnalysis(rc *request.AnonymousContext, payload *createCodePayload) (*returntypes.AnalysisCreatedResponse, error)

	//url:/v1/analyzes/repo method:POST
	CreateRepoAnalysis(rc *request.AnonymousContext, payload *createRepoPayload) (*returntypes.AnalysisCreatedResponse, error)

	//url:/v1/analyzes/{analysisguid}
	GetAnalysisByGUID(rc *request.AnonymousContext, req *request.AnalysisGUID) (*returntypes.AnalysisInfo, error)

	//url:/v1/analyzes/{analysisguid}/state
	GetAnalysisStateByGUID(rc *request.AnonymousContext, req *request.AnalysisGUID) (*returntypes.AnalysisState, error)

	//url:/v1/analyzes
	ListAnalyzes(rc *request.AnonymousContext, req *historyRequest) (*returntypes.AnalysisListResponse, error)

	//url:/v1/analyzes/{analysisguid}/label method:PUT
	UpdateAnalysisLabel(rc *request.InternalContext, req *request.AnalysisGUID, update *updateLabelPayload) error
}

type BasicService struct {
	Cfg             config.Config
	ProviderFactory providers.Factory
	Cache           cache.Cache
	Authorizer      *auth.Authorizer
	LaunchQueue     *queueanalyzes.LauncherProducer
}

func (s BasicService) CreateCodeAnalysis(rc *request.AnonymousContext,
	payload *createCodePayload) (*returntypes.AnalysisCreatedResponse, error) {

	if strings.TrimSpace(payload.Code) == "" {
		return nil, errors.Wrap(apierrors.ErrBadRequest, "code must not be empty")
	}

	maxCodeSize := s.Cfg.GetInt("MAX_CODE_SIZE_BYTES", 1024*1024)
	if len(payload.Code) > maxCodeSize {
		return nil, errors.Wrapf(apierrors.ErrBadRequest,
			"code size %d exceeds the limit of %d bytes", len(payload.Code), maxCodeSize)
	}

	language := strings.ToLower(payload.Language)
	if language == "" {
		language = "go"
	}

	au := s.tryAuthorize(rc)
	analysis := models.Analysis{
		GUID:     uuid.NewV4().String(),
		Status:   models.AnalysisStatusPending,
		Code:     payload.Code,
		Language: language,
		FilePath: payload.FileName,
	}
	if au != nil {
		analysis.UserID = &au.User.ID
	}

	if err := analysis.Create(rc.DB); err != nil {
		return nil, errors.Wrap(err, "can't create analysis")
	}

	if err := s.LaunchQueue.Put(analysis.GUID); err != nil {
		return nil, errors.Wrap(err, "failed to put to launch queue")
	}

	s.trackSubmission(rc, au, "code analysis created", map[string]interface{}{
		"analysis_guid": analysis.GUID,
		"language":      language,
	})

	rc.Log.Infof("Created code analysis %s", analysis.GUID)
	return &returntypes.AnalysisCreatedResponse{
		AnalysisGUID: analysis.GUID,
		Status:       string(analysis.Status),
	}, nil
}

//nolint:gocyclo
func (s BasicService) CreateRepoAnalysis(rc *request.AnonymousContext,
	payload *createRepoPayload) (*returntypes.AnalysisCreatedResponse, error) {

	owner, name, err := parseRepoRef(payload.Repo)
	if err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	au := s.tryAuthorize(rc)

	var p provider.Provider
	if au != nil {
		p, err = s.ProviderFactory.Build(au.Auth)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build provider")
		}
	} else {
		p = s.ProviderFactory.BuildAnonymous()
	}

	repo, err := s.resolveRepoCached(rc, p, owner, name)
	if err != nil {
		if errors.Cause(err) == provider.ErrNotFound {
			return nil, errors.Wrapf(apierrors.ErrNotFound, "no repo %s/%s or no access to it", owner, name)
		}

		return nil, errors.Wrapf(err, "failed to resolve repo %s/%s", owner, name)
	}

	if repo.IsPrivate {
		if au == nil {
			return nil, apierrors.NewForbiddenError("NEED_AUTH_TO_ANALYZE_PRIVATE_REPO")
		}
		if au.Auth.PrivateAccessToken == "" {
			return nil, apierrors.NewForbiddenError("NEED_PRIVATE_ACCESS_TOKEN_TO_ANALYZE_PRIVATE_REPO")
		}
	}

	branchName := payload.Branch
	if branchName == "" {
		branchName = repo.DefaultBranch
	}

	branch, err := p.GetBranch(rc.Ctx, owner, name, branchName)
	if err != nil {
		if errors.Cause(err) == provider.ErrNotFound {
			return nil, errors.Wrapf(apierrors.ErrNotFound, "no branch %s in repo %s/%s", branchName, owner, name)
		}

		return nil, errors.Wrapf(err, "failed to get branch %s of repo %s/%s", branchName, owner, name)
	}

	language := strings.ToLower(repo.Language)
	if language == "" {
		language = "go"
	}

	analysis := models.Analysis{
		GUID:          uuid.NewV4().String(),
		Status:        models.AnalysisStatusPending,
		Language:      language,
		Repository:    strings.ToLower(repo.FullName),
		Branch:        branch.Name,
		CommitSHA:     branch.HeadCommitSHA,
		CommitMessage: branch.CommitMessage,
		CommitAuthor:  branch.CommitAuthor,
	}
	if au != nil {
		analysis.UserID = &au.User.ID
	}

	if err = analysis.Create(rc.DB); err != nil {
		return nil, errors.Wrap(err, "can't create analysis")
	}

	if err = s.LaunchQueue.Put(analysis.GUID); err != nil {
		return nil, errors.Wrap(err, "failed to put to launch queue")
	}

	s.trackSubmission(rc, au, "repo analysis created", map[string]interface{}{
		"analysis_guid": analysis.GUID,
		"repository":    analysis.Repository,
		"branch":        analysis.Branch,
	})

	rc.Log.Infof("Created repo analysis %s for %s@%s", analysis.GUID, analysis.Repository, analysis.Branch)
	return &returntypes.AnalysisCreatedResponse{
		AnalysisGUID: analysis.GUID,
		Status:       string(analysis.Status),
	}, nil
}

func (s BasicService) GetAnalysisByGUID(rc *request.AnonymousContext,
	req *request.AnalysisGUID) (*returntypes.AnalysisInfo, error) {

	analysis, err := s.fetchAnalysis(rc.DB, req.AnalysisGUID)
	if err != nil {
		return nil, err
	}

	return buildAnalysisInfo(analysis), nil
}

func (s BasicService) GetAnalysisStateByGUID(rc *request.AnonymousContext,
	req *request.AnalysisGUID) (*returntypes.AnalysisState, error) {

	analysis, err := s.fetchAnalysis(rc.DB, req.AnalysisGUID)
	if err != nil {
		return nil, err
	}

	return &returntypes.AnalysisState{
		Status:        string(analysis.Status),
		StatusMessage: analysis.StatusMessage,
	}, nil
}

func (s BasicService) ListAnalyzes(rc *request.AnonymousContext,
	req *historyRequest) (*returntypes.AnalysisListResponse, error) {

	const maxLimit = 100
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	qs := models.NewAnalysisQuerySet(rc.DB)
	if req.Repository != "" {
		qs = qs.RepositoryEq(strings.ToLower(req.Repository))
	}

	var analyzes []models.Analysis
	err := qs.
		OrderDescByID(). // newest first
		Limit(limit).
		Offset(offset).
		All(&analyzes)
	if err != nil {
		return nil, errors.Wrap(err, "can't select analyzes from db")
	}

	infos := []returntypes.AnalysisInfo{}
	for i := range analyzes {
		infos = append(infos, *buildAnalysisInfo(&analyzes[i]))
	}

	return &returntypes.AnalysisListResponse{
		Analyzes: infos,
	}, nil
}

func (s BasicService) UpdateAnalysisLabel(rc *request.InternalContext,
	req *request.AnalysisGUID, update *updateLabelPayload) error {

	if update.Label != 0 && update.Label != 1 {
		return errors.Wrapf(apierrors.ErrBadRequest, "label must be 0 or 1, got %d", update.Label)
	}

	analysis, err := s.fetchAnalysis(rc.DB, req.AnalysisGUID)
	if err != nil {
		return err
	}

	if analysis.Status != models.AnalysisStatusCompleted {
		return errors.Wrapf(apierrors.ErrBadRequest,
			"can't label analysis in status %s, only completed analyzes are labelable", analysis.Status)
	}

	label := update.Label
	err = models.NewAnalysisQuerySet(rc.DB).
		IDEq(analysis.ID).
		VersionEq(analysis.Version).
		GetUpdater().
		SetLabel(&label).
		SetVersion(analysis.Version + 1).
		UpdateRequired()
	if err != nil {
		return errors.Wrapf(err, "failed to set label on analysis %s", analysis.GUID)
	}

	rc.Log.Infof("Labeled analysis %s with %d", analysis.GUID, label)
	return nil
}

func (s BasicService) fetchAnalysis(db *gorm.DB, guid string) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := models.NewAnalysisQuerySet(db).GUIDEq(guid).One(&analysis); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.Wrapf(apierrors.ErrNotFound, "no analysis with guid %s", guid)
		}

		return nil, errors.Wrapf(err, "can't get analysis with guid %s", guid)
	}

	return &analysis, nil
}

// tryAuthorize attributes the submission to a user when a valid session
// cookie was sent: both endpoints accept anonymous submissions too.
func (s BasicService) tryAuthorize(rc *request.AnonymousContext) *auth.AuthenticatedUser {
	au, err := s.Authorizer.Authorize(rc.SessCtx)
	if err != nil {
		if errors.Cause(err) != apierrors.ErrNotAuthorized {
			rc.Log.Warnf("Failed to authorize request: %s", err)
		}
		return nil
	}

	return au
}

func (s BasicService) resolveRepoCached(rc *request.AnonymousContext, p provider.Provider,
	owner, name string) (*provider.Repo, error) {

	key := fmt.Sprintf("repos/%s/%s/%s/resolve?v=1", p.Name(), owner, name)

	var repo provider.Repo
	if err := s.Cache.Get(key, &repo); err != nil {
		rc.Log.Warnf("Can't fetch repo from cache by key %s: %s", key, err)
	} else if repo.FullName != "" {
		rc.Log.Infof("Returning repo %s from cache", repo.FullName)
		return &repo, nil
	}

	pr, err := p.GetRepoByName(rc.Ctx, owner, name)
	if err != nil {
		return nil, err
	}

	// don't cache private repos: the next caller may have no access to them
	if !pr.IsPrivate {
		cacheTTL := s.Cfg.GetDuration("REPO_RESOLVE_CACHE_TTL", time.Hour)
		if err = s.Cache.Set(key, cacheTTL, *pr); err != nil {
			rc.Log.Warnf("Can't save repo to cache by key %s: %s", key, err)
		}
	}

	return pr, nil
}

func (s BasicService) trackSubmission(rc *request.AnonymousContext, au *auth.AuthenticatedUser,
	eventName string, props map[string]interface{}) {

	var userID int
	if au != nil {
		userID = int(au.User.ID)
	}

	events.NewAuthenticatedTracker(userID).Track(rc.Ctx, eventName, props)
}

func buildAnalysisInfo(analysis *models.Analysis) *returntypes.AnalysisInfo {
	return &returntypes.AnalysisInfo{
		GUID:          analysis.GUID,
		Status:        string(analysis.Status),
		StatusMessage: analysis.StatusMessage,

		Code:     analysis.Code,
		Language: analysis.Language,

		Repository:    analysis.Repository,
		Branch:        analysis.Branch,
		CommitSHA:     analysis.CommitSHA,
		CommitMessage: analysis.CommitMessage,
		CommitAuthor:  analysis.CommitAuthor,
		FilePath:      analysis.FilePath,

		OverallScore:         analysis.OverallScore,
		StyleScore:           analysis.StyleScore,
		ComplexityScore:      analysis.ComplexityScore,
		MaintainabilityScore: analysis.MaintainabilityScore,
		SecurityScore:        analysis.SecurityScore,

		Metrics: analysis.MetricsJSON,
		Issues:  analysis.IssuesJSON,

		Label: analysis.Label,

		CreatedAt: analysis.CreatedAt,
	}
}

func parseRepoRef(ref string) (owner, name string, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "", errors.New("repo must not be empty")
	}

	if strings.Contains(ref, "://") {
		u, perr := url.Parse(ref)
		if perr != nil {
			return "", "", errors.Wrapf(perr, "invalid repo url %q", ref)
		}
		if u.Host != "github.com" {
			return "", "", fmt.Errorf("unsupported repo host %q, only github.com is supported", u.Host)
		}
		ref = strings.Trim(u.Path, "/")
	}

	ref = strings.TrimSuffix(ref, ".git")
	parts := strings.Split(ref, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo reference %q, expected owner/name", ref)
	}

	return strings.ToLower(parts[0]), strings.ToLower(parts[1]), nil
}
