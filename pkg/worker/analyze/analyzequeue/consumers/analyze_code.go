package consumers

import (
	"context"
	"time"

	"github.com/codequal/codequal-api/pkg/worker/analytics"
	"github.com/codequal/codequal-api/pkg/worker/analyze/processors"
	"github.com/pkg/errors"
)

type AnalyzeCode struct {
	baseConsumer

	pf *processors.Factory
}

func NewAnalyzeCode(pf *processors.Factory) *AnalyzeCode {
	return &AnalyzeCode{
		baseConsumer: baseConsumer{
			eventName: analytics.EventAnalysisProcessed,
		},
		pf: pf,
	}
}

func (c AnalyzeCode) Consume(ctx context.Context, analysisGUID string) error {
	ctx = c.prepareContext(ctx, map[string]interface{}{
		"analysisGUID": analysisGUID,
		"kind":         "code",
		"userIDString": "unknown",
	})

	return c.wrapConsuming(ctx, func() error {
		var cancel context.CancelFunc
		// If you change timeout value don't forget to change it
		// in the api stale analyzes checker
		ctx, cancel = context.WithTimeout(ctx, 10*time.Minute)
		defer cancel()

		p, cleanup, err := c.pf.BuildCodeProcessor()
		if err != nil {
			return errors.Wrap(err, "failed to build code processor")
		}
		defer cleanup()

		return p.Process(ctx, analysisGUID)
	})
}
