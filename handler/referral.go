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

type Referral struct {
	Config   *config.Config
	Referral service.IReferralService
	Account  service.IAccountService
}

func (h *Referral) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/referral", authorize)
	g.GET("/code", context.Wrap(h.MyCode))
	g.POST("/link", context.Wrap(h.Link))
}

// MyCode 当前用户的邀请码与邀请成绩
func (h *Referral) MyCode(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	acc, err := h.Account.GetAccount(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{
		"referral_code":       acc.ReferralCode,
		"total_referrals":     acc.TotalReferrals,
		"referral_bonus_rate": acc.ReferralBonusRate,
	})
	return nil
}

// Link 被邀请人提交邀请码，绑定关系并发放双方欢迎奖励
func (h *Referral) Link(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.LinkReferralReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	resp, err := h.Referral.LinkReferral(c.Request.Context(), req.Code, userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}
