package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 业务错误码：4xxxx 入参/规则拒绝，5xxxx 系统异常
const (
	CodeValidation          = 40000
	CodeInsufficientBalance = 40001
	CodeBelowMinimum        = 40002
	CodeQuotaExceeded       = 40003
	CodeUnknownReferral     = 40004
	CodeAlreadyLinked       = 40005
	CodeAlreadyClaimed      = 40006
	CodeCouponInvalid       = 40007
	CodeAccountFrozen       = 40010
	CodePartiallyApplied    = 50001
	CodeInternal            = 50000
)

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: CodeInternal,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if be, ok := err.(*BizError); ok {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, CodeInternal, err.Error())
			}
			c.Abort()
		}
	}
}
