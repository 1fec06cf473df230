package auth

import (
	"context"
	"net/http"

	"github.com/codequal/codequal-api/internal/api/apierrors"
	"github.com/codequal/codequal-api/internal/api/endpointutil"
	"github.com/codequal/codequal-api/internal/api/transportutil"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/api/request"
	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/pkg/errors"
)

func RegisterHandlers(svc Service, regCtx *transportutil.HandlerRegContext) {
	anonOpts := serverOptions(regCtx, transportutil.MakeStoreAnonymousRequestContext(*regCtx))
	authOpts := serverOptions(regCtx, transportutil.MakeStoreAuthorizedRequestContext(*regCtx))

	regCtx.Router.Methods("GET").Path("/v1/auth/check").Handler(httptransport.NewServer(
		makeCheckAuthEndpoint(svc, regCtx.Log),
		decodeCheckAuthRequest,
		transportutil.EncodeJSONResponse,
		authOpts...,
	))
	regCtx.Router.Methods("GET").Path("/v1/auth/logout").Handler(httptransport.NewServer(
		makeLogoutEndpoint(svc, regCtx.Log),
		decodeLogoutRequest,
		transportutil.EncodeJSONResponse,
		authOpts...,
	))
	regCtx.Router.Methods("GET").Path("/v1/auth/{provider}").Handler(httptransport.NewServer(
		makeLoginPublicEndpoint(svc, regCtx.Log),
		decodeLoginPublicRequest,
		transportutil.EncodeJSONResponse,
		anonOpts...,
	))
	regCtx.Router.Methods("GET").Path("/v1/auth/{provider}/private").Handler(httptransport.NewServer(
		makeLoginPrivateEndpoint(svc, regCtx.Log),
		decodeLoginPrivateRequest,
		transportutil.EncodeJSONResponse,
		authOpts...,
	))
	regCtx.Router.Methods("GET").Path("/v1/auth/{provider}/callback/public").Handler(httptransport.NewServer(
		makeLoginPublicOAuthCallbackEndpoint(svc, regCtx.Log),
		decodeLoginPublicOAuthCallbackRequest,
		transportutil.EncodeJSONResponse,
		anonOpts...,
	))
	regCtx.Router.Methods("GET").Path("/v1/auth/{provider}/callback/private").Handler(httptransport.NewServer(
		makeLoginPrivateOAuthCallbackEndpoint(svc, regCtx.Log),
		decodeLoginPrivateOAuthCallbackRequest,
		transportutil.EncodeJSONResponse,
		authOpts...,
	))
}

func serverOptions(regCtx *transportutil.HandlerRegContext,
	storeContext httptransport.RequestFunc) []httptransport.ServerOption {

	return []httptransport.ServerOption{
		httptransport.ServerBefore(transportutil.StoreHTTPRequestToContext, storeContext),
		httptransport.ServerErrorEncoder(transportutil.EncodeError),
		httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(regCtx.Log)),
		httptransport.ServerFinalizer(transportutil.FinalizeRequest),
	}
}

type checkAuthRequest struct{}

func (r checkAuthRequest) FillLogContext(lctx logutil.Context) {}

func makeCheckAuthEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)

		ret, err := svc.CheckAuth(rc)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("auth.Service.CheckAuth failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeCheckAuthRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &checkAuthRequest{}, nil
}

type logoutRequest struct{}

func (r logoutRequest) FillLogContext(lctx logutil.Context) {}

func makeLogoutEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)

		if err := svc.Logout(rc); err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("auth.Service.Logout failed: %s", err)
			}
			return nil, err
		}

		return struct{}{}, nil
	}
}

func decodeLogoutRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &logoutRequest{}, nil
}

type loginRequest struct {
	Req *Request
}

func (r loginRequest) FillLogContext(lctx logutil.Context) {
	r.Req.FillLogContext(lctx)
}

func makeLoginPublicEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req := reqObj.(*loginRequest)
		req.FillLogContext(rc.Lctx)

		if err := svc.LoginPublic(rc, req.Req); err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("auth.Service.LoginPublic failed: %s", err)
			}
			return nil, err
		}

		return struct{}{}, nil
	}
}

func decodeLoginPublicRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req loginRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

func makeLoginPrivateEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)
		req := reqObj.(*loginRequest)
		req.FillLogContext(rc.Lctx)

		if err := svc.LoginPrivate(rc, req.Req); err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("auth.Service.LoginPrivate failed: %s", err)
			}
			return nil, err
		}

		return struct{}{}, nil
	}
}

func decodeLoginPrivateRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req loginRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

type oauthCallbackRequest struct {
	Req *OAuthCallbackRequest
}

func (r oauthCallbackRequest) FillLogContext(lctx logutil.Context) {
	r.Req.FillLogContext(lctx)
}

func makeLoginPublicOAuthCallbackEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req := reqObj.(*oauthCallbackRequest)
		req.FillLogContext(rc.Lctx)

		if err := svc.LoginPublicOAuthCallback(rc, req.Req); err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("auth.Service.LoginPublicOAuthCallback failed: %s", err)
			}
			return nil, err
		}

		return struct{}{}, nil
	}
}

func decodeLoginPublicOAuthCallbackRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req oauthCallbackRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

func makeLoginPrivateOAuthCallbackEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)
		req := reqObj.(*oauthCallbackRequest)
		req.FillLogContext(rc.Lctx)

		if err := svc.LoginPrivateOAuthCallback(rc, req.Req); err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("auth.Service.LoginPrivateOAuthCallback failed: %s", err)
			}
			return nil, err
		}

		return struct{}{}, nil
	}
}

func decodeLoginPrivateOAuthCallbackRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req oauthCallbackRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}
