package events

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
	regCtx.Router.Methods("POST").Path("/v1/events/analytics").Handler(httptransport.NewServer(
		makeTrackEventEndpoint(svc, regCtx.Log),
		decodeTrackEventRequest,
		transportutil.EncodeJSONResponse,
		httptransport.ServerBefore(transportutil.StoreHTTPRequestToContext,
			transportutil.MakeStoreAuthorizedRequestContext(*regCtx)),
		httptransport.ServerErrorEncoder(transportutil.EncodeError),
		httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(regCtx.Log)),
		httptransport.ServerFinalizer(transportutil.FinalizeRequest),
	))
}

type trackEventRequest struct {
	Req *Request
}

func (r trackEventRequest) FillLogContext(lctx logutil.Context) {
	r.Req.FillLogContext(lctx)
}

func makeTrackEventEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AuthorizedContext)
		req := reqObj.(*trackEventRequest)
		req.FillLogContext(rc.Lctx)

		if err := svc.TrackEvent(rc, req.Req); err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("events.Service.TrackEvent failed: %s", err)
			}
			return nil, err
		}

		return struct{}{}, nil
	}
}

func decodeTrackEventRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req trackEventRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}
