package analyzes

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/codequal/codequal-api/internal/shared/db/gormdb"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/internal/shared/queue/consumers"
	"github.com/codequal/codequal-api/internal/shared/queue/producers"
	"github.com/codequal/codequal-api/pkg/api/models"
	"github.com/codequal/codequal-api/pkg/api/workers/primaryqueue"
	"github.com/codequal/codequal-api/pkg/worker/analyze/analyzequeue"
	"github.com/codequal/codequal-api/pkg/worker/analyze/analyzequeue/task"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	redsync "gopkg.in/redsync.v1"
)

const launchQueueID = "analyzes/launch"

type launchMessage struct {
	AnalysisGUID string
}

func (m launchMessage) LockID() string {
	return fmt.Sprintf("%s/%s", launchQueueID, m.AnalysisGUID)
}

type LauncherProducer struct {
	producers.Base
}

func (p *LauncherProducer) Register(m *producers.Multiplexer) error {
	return p.Base.Register(m, launchQueueID)
}

func (p LauncherProducer) Put(analysisGUID string) error {
	return p.Base.Put(launchMessage{
		AnalysisGUID: analysisGUID,
	})
}

type LauncherConsumer struct {
	log logutil.Log
	db  *sql.DB
}

func NewLauncherConsumer(log logutil.Log, db *sql.DB) *LauncherConsumer {
	return &LauncherConsumer{
		log: log,
		db:  db,
	}
}

func (c LauncherConsumer) Register(m *consumers.Multiplexer, df *redsync.Redsync) error {
	return primaryqueue.RegisterConsumer(c.consumeMessage, launchQueueID, m, df, c.log)
}

func (c LauncherConsumer) consumeMessage(ctx context.Context, m *launchMessage) error {
	gormDB, err := gormdb.FromSQL(ctx, c.db)
	if err != nil {
		return errors.Wrap(err, "failed to get gorm db")
	}

	return c.run(m, gormDB)
}

func (c LauncherConsumer) run(m *launchMessage, db *gorm.DB) error {
	var analysis models.Analysis
	if err := models.NewAnalysisQuerySet(db).GUIDEq(m.AnalysisGUID).One(&analysis); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.Wrapf(consumers.ErrPermanent, "no analysis with guid %s", m.AnalysisGUID)
		}

		return errors.Wrapf(err, "failed to fetch analysis with guid %s", m.AnalysisGUID)
	}

	if analysis.Status != models.AnalysisStatusPending {
		// repeated delivery: the worker task was already sent
		c.log.Infof("Analysis %s is already in status %s, skip relaunching", m.AnalysisGUID, analysis.Status)
		return nil
	}

	if err := c.scheduleWorkerTask(&analysis); err != nil {
		return errors.Wrap(err, "failed to schedule worker task")
	}

	c.log.Infof("Sent analysis %s to the worker queue", m.AnalysisGUID)
	return nil
}

func (c LauncherConsumer) scheduleWorkerTask(analysis *models.Analysis) error {
	if analysis.Repository != "" {
		return analyzequeue.ScheduleRepoAnalysis(&task.RepoAnalysis{
			AnalysisGUID: analysis.GUID,
		})
	}

	return analyzequeue.ScheduleCodeAnalysis(&task.CodeAnalysis{
		AnalysisGUID: analysis.GUID,
	})
}
