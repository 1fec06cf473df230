package smells

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

	regCtx.Router.Methods("POST").Path("/v1/smells/detect").Handler(httptransport.NewServer(
		makeDetectSmellsEndpoint(svc, regCtx.Log),
		decodeDetectSmellsRequest,
		transportutil.EncodeJSONResponse,
		anonOpts...,
	))
	regCtx.Router.Methods("POST").Path("/v1/smells/predict").Handler(httptransport.NewServer(
		makePredictSmellEndpoint(svc, regCtx.Log),
		decodePredictSmellRequest,
		transportutil.EncodeJSONResponse,
		anonOpts...,
	))
	regCtx.Router.Methods("POST").Path("/v1/smells/train").Handler(httptransport.NewServer(
		makeTrainClassifierEndpoint(svc, regCtx.Log),
		decodeTrainClassifierRequest,
		transportutil.EncodeJSONResponse,
		internalOpts...,
	))
	regCtx.Router.Methods("GET").Path("/v1/smells/model").Handler(httptransport.NewServer(
		makeGetModelInfoEndpoint(svc, regCtx.Log),
		decodeGetModelInfoRequest,
		transportutil.EncodeJSONResponse,
		anonOpts...,
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

type detectSmellsRequest struct {
	Payload *detectPayload
}

func (r detectSmellsRequest) FillLogContext(lctx logutil.Context) {
	r.Payload.FillLogContext(lctx)
}

func makeDetectSmellsEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req := reqObj.(*detectSmellsRequest)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.DetectSmells(rc, req.Payload)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("smells.Service.DetectSmells failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeDetectSmellsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req detectSmellsRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

type predictSmellRequest struct {
	Payload *predictPayload
}

func (r predictSmellRequest) FillLogContext(lctx logutil.Context) {
	r.Payload.FillLogContext(lctx)
}

func makePredictSmellEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req := reqObj.(*predictSmellRequest)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.PredictSmell(rc, req.Payload)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("smells.Service.PredictSmell failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodePredictSmellRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req predictSmellRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

type trainClassifierRequest struct{}

func (r trainClassifierRequest) FillLogContext(lctx logutil.Context) {}

func makeTrainClassifierEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.InternalContext)

		ret, err := svc.TrainClassifier(rc)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("smells.Service.TrainClassifier failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeTrainClassifierRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &trainClassifierRequest{}, nil
}

type getModelInfoRequest struct{}

func (r getModelInfoRequest) FillLogContext(lctx logutil.Context) {}

func makeGetModelInfoEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)

		ret, err := svc.GetModelInfo(rc)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("smells.Service.GetModelInfo failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeGetModelInfoRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &getModelInfoRequest{}, nil
}
