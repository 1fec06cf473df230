package analyzes

import (
	"time"

	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/api/models"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type Staler struct {
	DB  *gorm.DB
	Log logutil.Log
}

func (s Staler) Run() {
	// If you change it don't forget to change it in the worker
	const taskProcessingTimeout = time.Minute * 10 * 12 // 12x of the worker timeout: need time for queue processing

	for range time.Tick(taskProcessingTimeout / 2) {
		if _, err := s.RunIteration(taskProcessingTimeout); err != nil {
			s.Log.Warnf("Can't check stale analyzes: %s", err)
			continue
		}
	}
}

func (s Staler) RunIteration(taskProcessingTimeout time.Duration) (int, error) {
	var analyzes []models.Analysis
	err := models.NewAnalysisQuerySet(s.DB).
		StatusIn(models.AnalysisStatusPending, models.AnalysisStatusProcessing).
		CreatedAtLt(time.Now().Add(-taskProcessingTimeout)).
		All(&analyzes)
	if err != nil {
		return 0, errors.Wrap(err, "can't get stale analyzes")
	}

	if len(analyzes) == 0 {
		return 0, nil
	}

	for _, analysis := range analyzes {
		if err = s.updateStaleAnalysis(analysis); err != nil {
			s.Log.Errorf("Can't update stale analysis %+v: %s", analysis, err)
		}
	}

	return len(analyzes), nil
}

func (s Staler) updateStaleAnalysis(analysis models.Analysis) error {
	err := models.NewAnalysisQuerySet(s.DB).
		IDEq(analysis.ID).
		VersionEq(analysis.Version).
		GetUpdater().
		SetStatus(models.AnalysisStatusFailed).
		SetStatusMessage("processing timeout").
		SetVersion(analysis.Version + 1).
		UpdateRequired()
	if err != nil {
		return errors.Wrap(err, "can't update stale analysis")
	}

	s.Log.Warnf("Fixed stale analysis %s: %+v", analysis.GUID, analysis)
	return nil
}
