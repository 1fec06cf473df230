package app

import (
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/pkg/worker/analyze/processors"
)

type Modifier func(a *App)

func SetProcessorFactory(pf *processors.Factory) Modifier {
	return func(a *App) {
		a.pf = pf
	}
}

func SetConfig(cfg config.Config) Modifier {
	return func(a *App) {
		a.cfg = cfg
	}
}
