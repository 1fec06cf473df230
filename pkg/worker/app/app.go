package app

import (
	"github.com/codequal/codequal-api/internal/shared/apperrors"
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/internal/shared/db/gormdb"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/worker/analytics"
	"github.com/codequal/codequal-api/pkg/worker/analyze/analyzequeue"
	"github.com/codequal/codequal-api/pkg/worker/analyze/linters"
	"github.com/codequal/codequal-api/pkg/worker/analyze/linters/golinters"
	"github.com/codequal/codequal-api/pkg/worker/analyze/processors"
	"github.com/codequal/codequal-api/pkg/worker/lib/queue"
	"github.com/jinzhu/gorm"
)

type App struct {
	log        logutil.Log
	trackedLog logutil.Log
	errTracker apperrors.Tracker
	cfg        config.Config
	gormDB     *gorm.DB
	pf         *processors.Factory
}

func NewApp(modifiers ...Modifier) *App {
	var a App
	for _, modifier := range modifiers {
		modifier(&a)
	}

	a.buildDeps()

	return &a
}

func (a *App) buildDeps() {
	if a.log == nil {
		slog := logutil.NewStderrLog("codequal-worker")
		slog.SetLevel(logutil.LogLevelInfo)
		a.log = slog
	}

	if a.cfg == nil {
		a.cfg = config.NewEnvConfig(a.log)
	}

	if a.errTracker == nil {
		a.errTracker = apperrors.GetTracker(a.cfg, a.log, "worker")
	}
	if a.trackedLog == nil {
		a.trackedLog = apperrors.WrapLogWithTracker(a.log, nil, a.errTracker)
	}

	if a.gormDB == nil {
		dbConnString, err := gormdb.GetDBConnString(a.cfg)
		if err != nil {
			a.log.Fatalf("Can't get DB conn string: %s", err)
		}
		gormDB, err := gormdb.GetDB(a.cfg, a.trackedLog, dbConnString)
		if err != nil {
			a.log.Fatalf("Can't get DB: %s", err)
		}
		a.gormDB = gormDB
	}

	if a.pf == nil {
		a.pf = processors.NewFactory(processors.Config{
			DB:  a.gormDB,
			Log: a.trackedLog,
			Linters: []linters.Linter{
				golinters.GoVet{},
				golinters.GoFmt{},
				golinters.GoSec{},
			},
			Runner:  linters.SimpleRunner{},
			Tracker: analytics.NewAmplitudeMixpanelTracker(),
		})
	}
}

func (a App) Run() {
	queue.Init()
	analyzequeue.RegisterTasks(a.pf, a.log)

	concurrency := a.cfg.GetInt("WORKERS_COUNT", 1)
	if err := analyzequeue.RunWorker(concurrency); err != nil {
		a.log.Fatalf("Worker exited with error: %s", err)
	}
}
