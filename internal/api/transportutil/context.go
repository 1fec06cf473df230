package transportutil

import (
	"context"
	"net/http"
	"time"

	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/codequal/codequal-api/internal/api/endpointutil"
	"github.com/codequal/codequal-api/internal/api/session"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

func makeSessionContext(r *http.Request, log logutil.Log) *session.RequestContext {
	return &session.RequestContext{
		Saver:    session.NewSaver(log),
		Registry: sessions.GetRegistry(r),
	}
}

func makeEndpointHandlerCtx(hctx HandlerRegContext) endpointutil.HandlerRegContext {
	return endpointutil.HandlerRegContext{
		Authorizer: hctx.Authorizer,
		Log:        hctx.Log,
		ErrTracker: hctx.ErrTracker,
		Cfg:        hctx.Cfg,
		DB:         hctx.DB,
	}
}

func MakeStoreInternalRequestContext(hctx HandlerRegContext) httptransport.RequestFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		ehctx := makeEndpointHandlerCtx(hctx)
		ehctx.ErrTracker = ehctx.ErrTracker.WithHTTPRequest(r)

		rc, err := endpointutil.MakeInternalRequestContext(ctx,
			makeSessionContext(r, hctx.Log), &ehctx,
			r.Header.Get("X-Internal-Access-Token"))
		if err != nil {
			return endpointutil.StoreError(ctx, errors.Wrap(err, "failed to authorize internal request"))
		}

		return endpointutil.StoreRequestContext(ctx, rc)
	}
}

func MakeStoreAnonymousRequestContext(hctx HandlerRegContext) httptransport.RequestFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		ehctx := makeEndpointHandlerCtx(hctx)
		ehctx.ErrTracker = ehctx.ErrTracker.WithHTTPRequest(r)

		rc := endpointutil.MakeAnonymousRequestContext(ctx, makeSessionContext(r, hctx.Log), &ehctx)
		return endpointutil.StoreRequestContext(ctx, rc)
	}
}

func MakeStoreAuthorizedRequestContext(hctx HandlerRegContext) httptransport.RequestFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		ehctx := makeEndpointHandlerCtx(hctx)
		ehctx.ErrTracker = ehctx.ErrTracker.WithHTTPRequest(r)

		rc, err := endpointutil.MakeAuthorizedRequestContext(ctx, makeSessionContext(r, hctx.Log), &ehctx)
		if err != nil {
			return endpointutil.StoreError(ctx, errors.Wrap(err, "failed to authorize"))
		}

		return endpointutil.StoreRequestContext(ctx, rc)
	}
}

func FinalizeRequest(ctx context.Context, code int, r *http.Request) {
	rc := endpointutil.RequestContext(ctx)
	if rc != nil {
		rc.Logger().Debugf("http", "%s %s respond %d for %s", r.Method, r.URL.Path, code, time.Since(rc.RequestStartedAt()))
	} else {
		logger := logutil.NewStderrLog("finalize request")
		logger.Debugf("http", "%s %s respond %d with no request context", r.Method, r.URL.Path, code)
	}
}

type ctxKey string

const (
	errKey         ctxKey = "transport/error"
	httpRequestKey ctxKey = "transport/httpRequest"
)

func storeContextError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errKey, err)
}

func GetContextError(ctx context.Context) error {
	v := ctx.Value(errKey)
	if v == nil {
		return nil
	}

	return v.(error)
}

func StoreHTTPRequestToContext(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey, r)
}

func getHTTPRequestFromContext(ctx context.Context) *http.Request {
	return ctx.Value(httpRequestKey).(*http.Request)
}
