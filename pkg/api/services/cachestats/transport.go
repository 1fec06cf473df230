package cachestats

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
	regCtx.Router.Methods("GET").Path("/v1/cache/stats").Handler(httptransport.NewServer(
		makeGetStatsEndpoint(svc, regCtx.Log),
		decodeGetStatsRequest,
		transportutil.EncodeJSONResponse,
		httptransport.ServerBefore(transportutil.StoreHTTPRequestToContext,
			transportutil.MakeStoreInternalRequestContext(*regCtx)),
		httptransport.ServerErrorEncoder(transportutil.EncodeError),
		httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(regCtx.Log)),
		httptransport.ServerFinalizer(transportutil.FinalizeRequest),
	))
}

type getStatsRequest struct{}

func (r getStatsRequest) FillLogContext(lctx logutil.Context) {}

func makeGetStatsEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		req := reqObj.(*getStatsRequest)
		rc := endpointutil.RequestContext(ctx).(*request.InternalContext)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.GetStats(rc)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("cachestats.Service.GetStats failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeGetStatsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req getStatsRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}
