package analytics

import (
	"context"

	"github.com/codequal/codequal-api/internal/shared/apperrors"
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/worker/lib/runmode"
)

func trackError(ctx context.Context, err error, level apperrors.Level) {
	if !runmode.IsProduction() {
		return
	}

	log := logutil.NewStderrLog("trackError")
	cfg := config.NewEnvConfig(log)
	et := apperrors.GetTracker(cfg, log, "worker")
	et.Track(level, err.Error(), getTrackingProps(ctx))
}
