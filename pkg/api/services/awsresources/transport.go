package awsresources

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
	opts := serverOptions(regCtx)

	regCtx.Router.Methods("GET").Path("/v1/aws/resources").Handler(httptransport.NewServer(
		makeGetResourcesEndpoint(svc, regCtx.Log),
		decodeGetResourcesRequest,
		transportutil.EncodeJSONResponse,
		opts...,
	))
	regCtx.Router.Methods("GET").Path("/v1/aws/costs").Handler(httptransport.NewServer(
		makeGetCostsEndpoint(svc, regCtx.Log),
		decodeGetCostsRequest,
		transportutil.EncodeJSONResponse,
		opts...,
	))
}

func serverOptions(regCtx *transportutil.HandlerRegContext) []httptransport.ServerOption {
	return []httptransport.ServerOption{
		httptransport.ServerBefore(transportutil.StoreHTTPRequestToContext,
			transportutil.MakeStoreInternalRequestContext(*regCtx)),
		httptransport.ServerErrorEncoder(transportutil.EncodeError),
		httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(regCtx.Log)),
		httptransport.ServerFinalizer(transportutil.FinalizeRequest),
	}
}

type getResourcesRequest struct{}

func (r getResourcesRequest) FillLogContext(lctx logutil.Context) {}

type getCostsRequest struct{}

func (r getCostsRequest) FillLogContext(lctx logutil.Context) {}

func makeGetResourcesEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		req := reqObj.(*getResourcesRequest)
		rc := endpointutil.RequestContext(ctx).(*request.InternalContext)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.GetResources(rc)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("awsresources.Service.GetResources failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func makeGetCostsEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		req := reqObj.(*getCostsRequest)
		rc := endpointutil.RequestContext(ctx).(*request.InternalContext)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.GetCosts(rc)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("awsresources.Service.GetCosts failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeGetResourcesRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req getResourcesRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}

func decodeGetCostsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req getCostsRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}
