package smells

import (
	"context"
	"strings"
	"time"

	"github.com/codequal/codequal-api/internal/api/apierrors"
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/analyzes/classifier"
	"github.com/codequal/codequal-api/pkg/analyzes/reviewer"
	"github.com/codequal/codequal-api/pkg/analyzes/smells"
	"github.com/codequal/codequal-api/pkg/api/models"
	"github.com/codequal/codequal-api/pkg/api/request"
	"github.com/pkg/errors"
)

type detectPayload struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

func (p detectPayload) FillLogContext(lctx logutil.Context) {
	lctx["language"] = p.Language
	lctx["code_size"] = len(p.Code)
}

type predictPayload struct {
	Code string `json:"code"`
}

func (p predictPayload) FillLogContext(lctx logutil.Context) {
	lctx["code_size"] = len(p.Code)
}

type Service interface {
	//url:/v1/smells/detect method:POST
	DetectSmells(rc *request.AnonymousContext, payload *detectPayload) (*smells.Report, error)

	//url:/v1/smells/predict method:POST
	PredictSmell(rc *request.AnonymousContext, payload *predictPayload) (*classifier.Prediction, error)

	//url:/v1/smells/train method:POST
	TrainClassifier(rc *request.InternalContext) (*classifier.TrainResult, error)

	//url:/v1/smells/model
	GetModelInfo(rc *request.AnonymousContext) (*classifier.Info, error)
}

type BasicService struct {
	Cfg        config.Config
	Detector   *smells.Detector
	Classifier *classifier.Classifier
	Reviewer   *reviewer.Reviewer // nil when OPENAI_API_KEY isn't configured
}

func (s BasicService) DetectSmells(rc *request.AnonymousContext, payload *detectPayload) (*smells.Report, error) {
	if err := s.validateCode(payload.Code); err != nil {
		return nil, err
	}

	report := s.Detector.Analyze(payload.Code)
	s.augmentWithReviewer(rc, payload.Code, report)

	rc.Log.Infof("Detected %d smells and %d suggestions, ai score %.0f",
		len(report.CodeSmells), len(report.Suggestions), report.AIScore)
	return report, nil
}

// augmentWithReviewer appends LLM reviewer suggestions to the rule-based
// report. Reviewer failures only lose the extra suggestions.
func (s BasicService) augmentWithReviewer(rc *request.AnonymousContext, code string, report *smells.Report) {
	if s.Reviewer == nil {
		return
	}

	timeout := s.Cfg.GetDuration("REVIEWER_TIMEOUT", 30*time.Second)
	ctx, cancel := context.WithTimeout(rc.Ctx, timeout)
	defer cancel()

	suggestions, err := s.Reviewer.Review(ctx, code)
	if err != nil {
		rc.Log.Warnf("Can't get reviewer suggestions, returning only rule-based ones: %s", err)
		return
	}

	for _, sug := range suggestions {
		report.Suggestions = append(report.Suggestions, smells.Finding{
			Type:     "suggestion",
			Severity: "info",
			Message:  sug.Message,
		})
	}
}

func (s BasicService) PredictSmell(rc *request.AnonymousContext, payload *predictPayload) (*classifier.Prediction, error) {
	if err := s.validateCode(payload.Code); err != nil {
		return nil, err
	}

	prediction, err := s.Classifier.Predict(payload.Code)
	if err != nil {
		if errors.Cause(err) == classifier.ErrNotTrained {
			return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
		}

		return nil, errors.Wrap(err, "failed to predict")
	}

	return prediction, nil
}

func (s BasicService) TrainClassifier(rc *request.InternalContext) (*classifier.TrainResult, error) {
	var analyzes []models.Analysis
	err := models.NewAnalysisQuerySet(rc.DB).
		StatusEq(models.AnalysisStatusCompleted).
		LabelIsNotNull().
		All(&analyzes)
	if err != nil {
		return nil, errors.Wrap(err, "can't select labeled analyzes from db")
	}

	var samples []classifier.Sample
	for _, analysis := range analyzes {
		if analysis.Code == "" { // repo submissions store no code
			continue
		}
		samples = append(samples, classifier.Sample{
			Code:  analysis.Code,
			Label: *analysis.Label,
		})
	}

	res, err := s.Classifier.Train(samples)
	if err != nil {
		if errors.Cause(err) == classifier.ErrNotEnoughSamples {
			return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
		}

		return nil, errors.Wrap(err, "failed to train classifier")
	}

	rc.Log.Infof("Trained classifier on %d samples: train accuracy %.2f, test accuracy %.2f",
		res.SamplesUsed, res.TrainAccuracy, res.TestAccuracy)
	return res, nil
}

func (s BasicService) GetModelInfo(rc *request.AnonymousContext) (*classifier.Info, error) {
	return s.Classifier.Info(), nil
}

func (s BasicService) validateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errors.Wrap(apierrors.ErrBadRequest, "code must not be empty")
	}

	maxCodeSize := s.Cfg.GetInt("MAX_CODE_SIZE_BYTES", 1024*1024)
	if len(code) > maxCodeSize {
		return errors.Wrapf(apierrors.ErrBadRequest,
			"code size %d exceeds the limit of %d bytes", len(code), maxCodeSize)
	}

	return nil
}
