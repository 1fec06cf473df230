package analyzes

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
	internalOpts := serverOptions(regCtx, transportutil.MakeStoreInternalRequestContext(*regCtx))

	regCtx.Router.Methods("POST").Path("/v1/analyzes").Handler(httptransport.NewServer(
		makeCreateCodeAnalysisEndpoint(svc, regCtx.Log),
		decodeCreateCodeAnalysisRequest,
		transportutil.EncodeJSONResponse,
		anonOpts...,
	))
	regCtx.Router.Methods("POST").Path("/v1/analyzes/repo").Handler(httptransport.NewServer(
		makeCreateRepoAnalysisEndpoint(svc, regCtx.Log),
		decodeCreateRepoAnalysisRequest,
		transportutil.EncodeJSONResponse,
		anonOpts...,
	))
	regCtx.Router.Methods("GET").Path("/v1/analyzes").Handler(httptransport.NewServer(
		makeListAnalyzesEndpoint(svc, regCtx.Log),
		decodeListAnalyzesRequest,
		transportutil.EncodeJSONResponse,
		anonOpts...,
	))
	regCtx.Router.Methods("GET").Path("/v1/analyzes/{analysisguid}").Handler(httptransport.NewServer(
		makeGetAnalysisByGUIDEndpoint(svc, regCtx.Log),
		decodeGetAnalysisByGUIDRequest,
		transportutil.EncodeJSONResponse,
		anonOpts...,
	))
	regCtx.Router.Methods("GET").Path("/v1/analyzes/{analysisguid}/state").Handler(httptransport.NewServer(
		makeGetAnalysisStateByGUIDEndpoint(svc, regCtx.Log),
		decodeGetAnalysisStateByGUIDRequest,
		transportutil.EncodeJSONResponse,
		anonOpts...,
	))
	regCtx.Router.Methods("PUT").Path("/v1/analyzes/{analysisguid}/label").Handler(httptransport.NewServer(
		makeUpdateAnalysisLabelEndpoint(svc, regCtx.Log),
		decodeUpdateAnalysisLabelRequest,
		transportutil.EncodeJSONResponse,
		internalOpts...,
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

type createCodeAnalysisRequest struct {
	Payload *createCodePayload
}

func (r createCodeAnalysisRequest) FillLogContext(lctx logutil.Context) {
	r.Payload.FillLogContext(lctx)
}

func makeCreateCodeAnalysisEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req := reqObj.(*createCodeAnalysisRequest)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.CreateCodeAnalysis(rc, req.Payload)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("analyzes.Service.CreateCodeAnalysis failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeCreateCodeAnalysisRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req createCodeAnalysisRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

type createRepoAnalysisRequest struct {
	Payload *createRepoPayload
}

func (r createRepoAnalysisRequest) FillLogContext(lctx logutil.Context) {
	r.Payload.FillLogContext(lctx)
}

func makeCreateRepoAnalysisEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req := reqObj.(*createRepoAnalysisRequest)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.CreateRepoAnalysis(rc, req.Payload)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("analyzes.Service.CreateRepoAnalysis failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeCreateRepoAnalysisRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req createRepoAnalysisRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

type getAnalysisByGUIDRequest struct {
	Req *request.AnalysisGUID
}

func (r getAnalysisByGUIDRequest) FillLogContext(lctx logutil.Context) {
	r.Req.FillLogContext(lctx)
}

func makeGetAnalysisByGUIDEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req := reqObj.(*getAnalysisByGUIDRequest)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.GetAnalysisByGUID(rc, req.Req)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("analyzes.Service.GetAnalysisByGUID failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeGetAnalysisByGUIDRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req getAnalysisByGUIDRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

type getAnalysisStateByGUIDRequest struct {
	Req *request.AnalysisGUID
}

func (r getAnalysisStateByGUIDRequest) FillLogContext(lctx logutil.Context) {
	r.Req.FillLogContext(lctx)
}

func makeGetAnalysisStateByGUIDEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req := reqObj.(*getAnalysisStateByGUIDRequest)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.GetAnalysisStateByGUID(rc, req.Req)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("analyzes.Service.GetAnalysisStateByGUID failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeGetAnalysisStateByGUIDRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req getAnalysisStateByGUIDRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

type listAnalyzesRequest struct {
	Query *historyRequest
}

func (r listAnalyzesRequest) FillLogContext(lctx logutil.Context) {
	r.Query.FillLogContext(lctx)
}

func makeListAnalyzesEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req := reqObj.(*listAnalyzesRequest)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.ListAnalyzes(rc, req.Query)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("analyzes.Service.ListAnalyzes failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeListAnalyzesRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req listAnalyzesRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

type updateAnalysisLabelRequest struct {
	Req    *request.AnalysisGUID
	Update *updateLabelPayload
}

func (r updateAnalysisLabelRequest) FillLogContext(lctx logutil.Context) {
	r.Req.FillLogContext(lctx)
	r.Update.FillLogContext(lctx)
}

func makeUpdateAnalysisLabelEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.InternalContext)
		req := reqObj.(*updateAnalysisLabelRequest)
		req.FillLogContext(rc.Lctx)

		if err := svc.UpdateAnalysisLabel(rc, req.Req, req.Update); err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("analyzes.Service.UpdateAnalysisLabel failed: %s", err)
			}
			return nil, err
		}

		return struct{}{}, nil
	}
}

func decodeUpdateAnalysisLabelRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req updateAnalysisLabelRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}
