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

type Exchange struct {
	Config   *config.Config
	Exchange service.IExchangeService
}

func (e *Exchange) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(e.Config.Jwt.Secret))
	g := r.Group("/v1/exchange", authorize)
	g.GET("/options", context.Wrap(e.Options))
	g.GET("/history", context.Wrap(e.History))
	g.POST("/redeem", context.Wrap(e.Redeem))
}

// Options 可兑换的类型与折算比例
func (e *Exchange) Options(c *gin.Context) error {
	response.Success(c, gin.H{
		"min_redemption": e.Config.Rewards.MinRedemption,
		"rates":          e.Config.Rewards.ExchangeRates,
	})
	return nil
}

func (e *Exchange) Redeem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.RedeemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	resp, err := e.Exchange.Redeem(c.Request.Context(), userID, req.ExchangeType, req.Amount)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (e *Exchange) History(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	limit := 20
	records, err := e.Exchange.History(c.Request.Context(), userID, limit)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{"records": records})
	return nil
}
