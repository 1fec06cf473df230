package repohook

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
	regCtx.Router.Methods("POST").Path("/v1/hooks/github").Handler(httptransport.NewServer(
		makeHandleGithubWebhookEndpoint(svc, regCtx.Log),
		decodeHandleGithubWebhookRequest,
		transportutil.EncodeJSONResponse,
		httptransport.ServerBefore(transportutil.StoreHTTPRequestToContext,
			transportutil.MakeStoreAnonymousRequestContext(*regCtx)),
		httptransport.ServerErrorEncoder(transportutil.EncodeError),
		httptransport.ServerErrorLogger(transportutil.AdaptErrorLogger(regCtx.Log)),
		httptransport.ServerFinalizer(transportutil.FinalizeRequest),
	))
}

type handleGithubWebhookRequest struct {
	Hook *GithubWebhook
	Body request.Body
}

func (r handleGithubWebhookRequest) FillLogContext(lctx logutil.Context) {
	r.Hook.FillLogContext(lctx)
}

func makeHandleGithubWebhookEndpoint(svc Service, log logutil.Log) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		if err := endpointutil.Error(ctx); err != nil {
			log.Warnf("Error occurred during request context creation: %s", err)
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req := reqObj.(*handleGithubWebhookRequest)
		req.FillLogContext(rc.Lctx)

		ret, err := svc.HandleGithubWebhook(rc, req.Hook, req.Body)
		if err != nil {
			if !apierrors.IsErrorLikeResult(err) {
				rc.Log.Errorf("repohook.Service.HandleGithubWebhook failed: %s", err)
			}
			return nil, err
		}

		return ret, nil
	}
}

func decodeHandleGithubWebhookRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req handleGithubWebhookRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return &req, nil
}
