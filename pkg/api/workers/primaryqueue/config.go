package primaryqueue

import (
	"time"

	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/internal/shared/queue/consumers"
	"github.com/pkg/errors"
	redsync "gopkg.in/redsync.v1"
)

const VisibilityTimeoutSec = 60
const ConsumerTimeout = 50 * time.Second // reserve 10 sec for SQS message deletion

func RegisterConsumer(handlerFunc interface{}, queueID string, m *consumers.Multiplexer,
	df *redsync.Redsync, log logutil.Log) error {

	consumer, err := consumers.NewReflectConsumer(handlerFunc, ConsumerTimeout, df, log)
	if err != nil {
		return errors.Wrap(err, "can't make reflect consumer")
	}

	return m.RegisterConsumer(queueID, consumer)
}
