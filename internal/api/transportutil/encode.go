package transportutil

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/codequal/codequal-api/internal/api/apierrors"
	"github.com/pkg/errors"
)

// EncodeJSONResponse writes the endpoint result as a JSON body. Sessions
// are finalized first so that their cookies make it into the headers.
func EncodeJSONResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	ctx = FinalizeSession(ctx, w)
	if err := GetContextError(ctx); err != nil {
		return encodeError(ctx, w, err)
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	return json.NewEncoder(w).Encode(response)
}

// EncodeError is the transport error encoder: error-like results (redirects,
// continuations) keep their own protocol, everything else maps to an HTTP
// code with an {"error": ...} body.
func EncodeError(ctx context.Context, err error, w http.ResponseWriter) {
	ctx = FinalizeSession(ctx, w)
	_ = encodeError(ctx, w, err)
}

func encodeError(ctx context.Context, w http.ResponseWriter, err error) error {
	if apierrors.IsErrorLikeResult(err) {
		return HandleErrorLikeResult(ctx, w, errors.Cause(err))
	}

	terr := MakeError(err)
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(terr.HTTPCode)
	return json.NewEncoder(w).Encode(ErrorResponse{Error: terr})
}
