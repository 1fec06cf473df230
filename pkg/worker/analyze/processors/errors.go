package processors

import (
	"github.com/codequal/codequal-api/pkg/worker/lib/errorutils"
	"github.com/codequal/codequal-api/pkg/worker/lib/fetchers"
	"github.com/pkg/errors"
)

var (
	ErrNothingToAnalyze = errors.New("nothing to analyze")
	ErrUnrecoverable    = errors.New("unrecoverable error")
)

// transformError maps known permanent failures to ErrUnrecoverable so the
// queue doesn't retry them.
func transformError(err error) error {
	if err == nil {
		return nil
	}

	causeErr := errors.Cause(err)
	if causeErr == fetchers.ErrNoBranchOrRepo {
		return errors.Wrap(ErrUnrecoverable, err.Error())
	}

	if _, ok := causeErr.(*errorutils.BadInputError); ok {
		return errors.Wrap(ErrUnrecoverable, err.Error())
	}

	return err
}

// publicError returns the part of err suitable for the status message shown
// to users.
func publicError(err error) string {
	causeErr := errors.Cause(err)
	if ierr, ok := causeErr.(*errorutils.InternalError); ok {
		return ierr.PublicDesc
	}
	if berr, ok := causeErr.(*errorutils.BadInputError); ok {
		return berr.PublicDesc
	}
	if causeErr == fetchers.ErrNoBranchOrRepo {
		return causeErr.Error()
	}
	if causeErr == ErrNothingToAnalyze {
		return causeErr.Error()
	}

	return "processing failed"
}
