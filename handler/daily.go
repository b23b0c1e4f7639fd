package handler

import (
	"net/http"

	"pointmax/config"
	"pointmax/middleware"
	"pointmax/pkg/context"
	"pointmax/pkg/response"
	"pointmax/service"
	"pointmax/types"

	"github.com/gin-gonic/gin"
)

type Daily struct {
	Config *config.Config
	Daily  service.IDailyService
	Coupon service.ICouponService
}

func (d *Daily) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(d.Config.Jwt.Secret))
	g := r.Group("/v1/daily", authorize)
	g.POST("/claim", context.Wrap(d.Claim))
	g.POST("/coupon", context.Wrap(d.UseCoupon))
}

// Claim 每日签到领取
func (d *Daily) Claim(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	resp, err := d.Daily.Claim(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}

// UseCoupon 优惠码兑换积分
func (d *Daily) UseCoupon(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.UseCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	resp, err := d.Coupon.Use(c.Request.Context(), userID, req.Code)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}
