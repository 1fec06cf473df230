package consumers

import (
	"context"
	"time"

	"github.com/codequal/codequal-api/pkg/worker/analytics"
)

type baseConsumer struct {
	eventName analytics.EventName
}

func (c baseConsumer) prepareContext(ctx context.Context, trackingProps map[string]interface{}) context.Context {
	ctx = analytics.ContextWithEventPropsCollector(ctx, c.eventName)
	ctx = analytics.ContextWithTrackingProps(ctx, trackingProps)
	return ctx
}

func (c baseConsumer) wrapConsuming(ctx context.Context, f func() error) error {
	log := analytics.Log(ctx)
	log.Infof("Starting consuming of %s...", c.eventName)

	startedAt := time.Now()
	err := f()
	log.Infof("Finished consuming of %s for %s", c.eventName, time.Since(startedAt))

	if err != nil {
		log.Errorf("Processing of %q task failed: %s", c.eventName, err)
		if !isRecoverableError(err) {
			log.Warnf("Error is unrecoverable, don't retry the task")
			return nil
		}
	}

	return err
}
