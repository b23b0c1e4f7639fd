package handler

import (
	"errors"

	"pointmax/pkg/response"
	"pointmax/service"
)

// asBizError 服务层哨兵错误翻译为业务错误码，未识别的原样返回走 500
func asBizError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrAccountNotFound):
		return response.NewError(response.CodeValidation, err.Error())
	case errors.Is(err, service.ErrInsufficientBalance):
		return response.NewError(response.CodeInsufficientBalance, err.Error())
	case errors.Is(err, service.ErrBelowMinimum),
		errors.Is(err, service.ErrUnknownExchangeType):
		return response.NewError(response.CodeBelowMinimum, err.Error())
	case errors.Is(err, service.ErrQuotaExceeded):
		return response.NewError(response.CodeQuotaExceeded, err.Error())
	case errors.Is(err, service.ErrUnknownReferralCode):
		return response.NewError(response.CodeUnknownReferral, err.Error())
	case errors.Is(err, service.ErrAlreadyLinked):
		return response.NewError(response.CodeAlreadyLinked, err.Error())
	case errors.Is(err, service.ErrAlreadyClaimed),
		errors.Is(err, service.ErrDuplicateSource):
		return response.NewError(response.CodeAlreadyClaimed, err.Error())
	case errors.Is(err, service.ErrCouponInvalid),
		errors.Is(err, service.ErrCouponExpired),
		errors.Is(err, service.ErrCouponExhausted):
		return response.NewError(response.CodeCouponInvalid, err.Error())
	case errors.Is(err, service.ErrAccountFrozen),
		errors.Is(err, service.ErrInvariantViolation):
		return response.NewError(response.CodeAccountFrozen, err.Error())
	case errors.Is(err, service.ErrPartiallyApplied):
		return response.NewError(response.CodePartiallyApplied, err.Error())
	}
	return err
}
