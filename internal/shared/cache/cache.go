package cache

import (
	"time"
)

type Cache interface {
	Get(key string, dest interface{}) error
	Set(key string, expireTimeout time.Duration, value interface{}) error
}

// Stats are cumulative counters since process start.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Errors uint64 `json:"errors"`
}

type StatTracker interface {
	Stats() Stats
}
