package processors

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"strconv"

	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/analyzes/metrics"
	"github.com/codequal/codequal-api/pkg/analyzes/scorer"
	"github.com/codequal/codequal-api/pkg/api/models"
	"github.com/codequal/codequal-api/pkg/worker/analytics"
	"github.com/codequal/codequal-api/pkg/worker/analyze/linters"
	lintersResult "github.com/codequal/codequal-api/pkg/worker/analyze/linters/result"
	"github.com/codequal/codequal-api/pkg/worker/lib/errorutils"
	"github.com/codequal/codequal-api/pkg/worker/lib/executors"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type Config struct {
	DB      *gorm.DB
	Log     logutil.Log
	Linters []linters.Linter
	Runner  linters.Runner
	Tracker analytics.Tracker
}

// analysisProcessor implements the pipeline shared by code and repo
// analyzes: claim the record, run the tools, score, persist.
type analysisProcessor struct {
	resultCollector
	Config

	exec executors.Executor
}

// issuesPayload is the persisted issues_json shape: issue arrays keyed by
// tool kind, lint for go vet, style for gofmt, security for gosec.
type issuesPayload struct {
	Lint     []lintersResult.Issue `json:"lint"`
	Style    []lintersResult.Issue `json:"style"`
	Security []lintersResult.Issue `json:"security"`

	ToolErrors      []lintersResult.ToolError `json:"tool_errors,omitempty"`
	Recommendations []scorer.Recommendation   `json:"recommendations,omitempty"`
}

func buildIssuesPayload(lintRes *lintersResult.Result, recommendations []scorer.Recommendation) issuesPayload {
	payload := issuesPayload{
		Lint:     []lintersResult.Issue{},
		Style:    []lintersResult.Issue{},
		Security: []lintersResult.Issue{},

		ToolErrors:      lintRes.ToolErrors,
		Recommendations: recommendations,
	}
	for _, i := range lintRes.Issues {
		switch i.FromTool {
		case "gofmt":
			payload.Style = append(payload.Style, i)
		case "gosec":
			payload.Security = append(payload.Security, i)
		default:
			payload.Lint = append(payload.Lint, i)
		}
	}

	return payload
}

func (p *analysisProcessor) loadAnalysis(guid string) (*models.Analysis, error) {
	var analysis models.Analysis
	err := models.NewAnalysisQuerySet(p.DB).GUIDEq(guid).One(&analysis)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.Wrapf(ErrUnrecoverable, "no analysis with guid %s", guid)
		}

		return nil, errors.Wrapf(err, "can't fetch analysis %s", guid)
	}

	return &analysis, nil
}

// claim transitions pending->processing. Returns false when the message is
// a duplicate and the analysis must not be processed again.
func (p *analysisProcessor) claim(analysis *models.Analysis) (bool, error) {
	switch analysis.Status {
	case models.AnalysisStatusCompleted, models.AnalysisStatusFailed:
		p.Log.Infof("Analysis %s is already finished with status %s, skip duplicate task",
			analysis.GUID, analysis.Status)
		return false, nil
	case models.AnalysisStatusProcessing:
		// previous attempt crashed, continue
		return true, nil
	}

	n, err := models.NewAnalysisQuerySet(p.DB).
		IDEq(analysis.ID).
		VersionEq(analysis.Version).
		StatusEq(models.AnalysisStatusPending).
		GetUpdater().
		SetStatus(models.AnalysisStatusProcessing).
		SetVersion(analysis.Version + 1).
		UpdateNum()
	if err != nil {
		return false, errors.Wrapf(err, "can't update analysis %s to processing", analysis.GUID)
	}
	if n == 0 {
		p.Log.Infof("Analysis %s was claimed in parallel, skip duplicate task", analysis.GUID)
		return false, nil
	}

	analysis.Status = models.AnalysisStatusProcessing
	analysis.Version++
	return true, nil
}

func (p *analysisProcessor) analyze(ctx context.Context, analysis *models.Analysis, code string) error {
	var lintRes *lintersResult.Result
	var err error
	p.trackTiming("Run tools", func() {
		lintRes, err = p.Runner.Run(ctx, p.Linters, p.exec)
	})
	if err != nil {
		return errors.Wrap(err, "failed to run tools")
	}

	lang := metrics.Lookup(analysis.Language)
	var m *metrics.Metrics
	p.trackTiming("Compute metrics", func() {
		m = lang.Compute(code)
	})

	calcRes := scorer.Calculator{}.Calc(m, lintRes.IssuesPerTool())

	return p.saveResult(analysis, lintRes, m, calcRes)
}

func (p *analysisProcessor) saveResult(analysis *models.Analysis, lintRes *lintersResult.Result,
	m *metrics.Metrics, calcRes *scorer.CalcResult) error {

	m.StyleScore = float64(calcRes.Scores.Style)
	metricsJSON, err := json.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "can't marshal metrics")
	}

	issuesJSON, err := json.Marshal(buildIssuesPayload(lintRes, calcRes.Recommendations))
	if err != nil {
		return errors.Wrap(err, "can't marshal issues")
	}

	err = models.NewAnalysisQuerySet(p.DB).
		IDEq(analysis.ID).
		VersionEq(analysis.Version).
		GetUpdater().
		SetStatus(models.AnalysisStatusCompleted).
		SetStatusMessage("").
		SetOverallScore(calcRes.Scores.Overall).
		SetStyleScore(float64(calcRes.Scores.Style)).
		SetComplexityScore(calcRes.Scores.Complexity).
		SetMaintainabilityScore(calcRes.Scores.Maintainability).
		SetSecurityScore(calcRes.Scores.Security).
		SetMetricsJSON(metricsJSON).
		SetIssuesJSON(issuesJSON).
		SetVersion(analysis.Version + 1).
		UpdateRequired()
	if err != nil {
		return errors.Wrapf(err, "can't save analysis %s result", analysis.GUID)
	}

	analysis.Version++
	p.Log.Infof("Analysis %s completed: overall score %.2f, %d issues",
		analysis.GUID, calcRes.Scores.Overall, len(lintRes.Issues))
	return nil
}

func (p *analysisProcessor) fail(analysis *models.Analysis, processingErr error) {
	err := models.NewAnalysisQuerySet(p.DB).
		IDEq(analysis.ID).
		VersionEq(analysis.Version).
		GetUpdater().
		SetStatus(models.AnalysisStatusFailed).
		SetStatusMessage(publicError(processingErr)).
		SetVersion(analysis.Version + 1).
		UpdateRequired()
	if err != nil {
		p.Log.Errorf("Can't save failure of analysis %s: %s", analysis.GUID, err)
	}
}

func (p *analysisProcessor) trackProcessedEvent(ctx context.Context, analysis *models.Analysis, processingErr error) {
	if p.Tracker == nil {
		return
	}

	userIDString := "anonymous"
	if analysis.UserID != nil {
		userIDString = strconv.Itoa(int(*analysis.UserID))
	}

	ctx = analytics.ContextWithTrackingProps(ctx, map[string]interface{}{
		"userIDString": userIDString,
		"analysisGUID": analysis.GUID,
		"language":     analysis.Language,
	})

	status := "ok"
	if processingErr != nil {
		status = "fail"
	}
	analytics.SaveEventProp(ctx, analytics.EventAnalysisProcessed, "status", status)
	analytics.SaveEventProp(ctx, analytics.EventAnalysisProcessed, "timings", p.timings)

	p.Tracker.Track(ctx, analytics.EventAnalysisProcessed)
}

// process is the panic-safe entry: prepare fills the executor work dir and
// returns the source text used for metrics.
func (p *analysisProcessor) process(ctx context.Context, guid string,
	prepare func(ctx context.Context, analysis *models.Analysis) (string, error)) error {

	analysis, err := p.loadAnalysis(guid)
	if err != nil {
		return err
	}

	proceed, err := p.claim(analysis)
	if err != nil || !proceed {
		return err
	}

	processingErr := p.processPanicSafe(ctx, analysis, prepare)
	if processingErr != nil {
		p.fail(analysis, processingErr)
	}

	p.trackProcessedEvent(ctx, analysis, processingErr)

	return transformError(processingErr)
}

func (p *analysisProcessor) processPanicSafe(ctx context.Context, analysis *models.Analysis,
	prepare func(ctx context.Context, analysis *models.Analysis) (string, error)) (err error) {

	defer func() {
		if r := recover(); r != nil {
			err = &errorutils.InternalError{
				PublicDesc:  "internal error",
				PrivateDesc: fmt.Sprintf("panic occured: %s, %s", r, debug.Stack()),
			}
			p.Log.Errorf("Processing of analysis %s panicked: %s", analysis.GUID, err)
		}
	}()

	var code string
	p.trackTiming("Prepare", func() {
		code, err = prepare(ctx, analysis)
	})
	if err != nil {
		return errors.Wrap(err, "failed to prepare sources")
	}

	return p.analyze(ctx, analysis, code)
}
