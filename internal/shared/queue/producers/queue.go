package producers

import "github.com/codequal/codequal-api/internal/shared/queue"

type Queue interface {
	Put(message queue.Message) error
}
