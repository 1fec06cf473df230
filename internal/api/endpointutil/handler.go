package endpointutil

import (
	"github.com/codequal/codequal-api/internal/shared/apperrors"
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/api/auth"
	"github.com/jinzhu/gorm"
)

type HandlerRegContext struct {
	Authorizer *auth.Authorizer
	Log        logutil.Log
	ErrTracker apperrors.Tracker
	Cfg        config.Config
	DB         *gorm.DB
}
