package codes

import (
	"bondcdp/core"
	"net/http"

	"github.com/twitchtv/twirp"
)

// CustomCodeKey meta key carrying the engine error code
const CustomCodeKey = "custom_code"

// Twirp wrap an engine error with its twirp code
func Twirp(err error) twirp.Error {
	code, ok := err.(core.ErrorCode)
	if !ok {
		return twirp.InternalErrorWith(err)
	}

	var twerr twirp.Error
	switch code {
	case core.ErrUnauthorized:
		twerr = twirp.NewError(twirp.PermissionDenied, "unauthorized")
	case core.ErrInvalidAmount:
		twerr = twirp.NewError(twirp.InvalidArgument, "invalid amount")
	case core.ErrInvalidIdentifier:
		twerr = twirp.NewError(twirp.InvalidArgument, "invalid isin")
	case core.ErrInvalidIdentifierLength:
		twerr = twirp.NewError(twirp.InvalidArgument, "isin must be 12 characters or less")
	case core.ErrVaultNotFound:
		twerr = twirp.NotFoundError("vault not found")
	case core.ErrRateConfigNotFound:
		twerr = twirp.NotFoundError("rate config not found")
	case core.ErrInsufficientCollateral:
		twerr = twirp.NewError(twirp.FailedPrecondition, "insufficient collateral")
	case core.ErrInvalidClockOrdering:
		twerr = twirp.NewError(twirp.FailedPrecondition, "clock went backwards")
	case core.ErrOptimisticLock:
		twerr = twirp.NewError(twirp.Aborted, "conflicting update, retry")
	case core.ErrArithmeticOverflow:
		twerr = twirp.NewError(twirp.OutOfRange, "arithmetic overflow")
	case core.ErrBondExists:
		twerr = twirp.NewError(twirp.AlreadyExists, "isin already registered")
	default:
		return twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, code.String())
}

// HTTPStatus http status for an error
func HTTPStatus(err error) int {
	if twerr, ok := err.(twirp.Error); ok {
		return twirp.ServerHTTPStatusFromErrorCode(twerr.Code())
	}

	return http.StatusInternalServerError
}
