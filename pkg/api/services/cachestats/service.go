package cachestats

import (
	"github.com/codequal/codequal-api/internal/shared/cache"
	"github.com/codequal/codequal-api/pkg/api/request"
)

type Service interface {
	//url:/v1/cache/stats
	GetStats(rc *request.InternalContext) (*cache.Stats, error)
}

type BasicService struct {
	Cache cache.StatTracker
}

func (s BasicService) GetStats(rc *request.InternalContext) (*cache.Stats, error) {
	stats := s.Cache.Stats()
	rc.Log.Infof("Returning cache stats %+v", stats)
	return &stats, nil
}
