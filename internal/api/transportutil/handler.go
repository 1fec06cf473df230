package transportutil

import (
	"github.com/codequal/codequal-api/internal/api/session"
	"github.com/codequal/codequal-api/internal/shared/apperrors"
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/api/auth"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
)

type HandlerRegContext struct {
	Router          *mux.Router
	Log             logutil.Log
	ErrTracker      apperrors.Tracker
	Cfg             config.Config
	DB              *gorm.DB
	Authorizer      *auth.Authorizer
	AuthSessFactory *session.Factory
}
