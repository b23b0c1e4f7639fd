package handler

import (
	"net/http"
	"time"

	"pointmax/config"
	"pointmax/middleware"
	"pointmax/pkg/context"
	"pointmax/pkg/jwt"
	"pointmax/pkg/response"
	"pointmax/pkg/snowflake"
	"pointmax/service"
	"pointmax/types"

	"github.com/gin-gonic/gin"
)

type Account struct {
	Config  *config.Config
	Account service.IAccountService
}

func (a *Account) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/account/register", context.Wrap(a.Register))

	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	g := r.Group("/v1/account", authorize)
	g.GET("/me", context.Wrap(a.Me))
	g.PUT("/profile", context.Wrap(a.UpdateProfile))
	g.POST("/verify/phone", context.Wrap(a.VerifyPhone))
	g.POST("/verify/identity", context.Wrap(a.VerifyIdentity))
}

// Register 开户并签发访问令牌
func (a *Account) Register(c *gin.Context) error {
	var req types.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	userID := uint64(snowflake.GenID())
	acc, err := a.Account.Register(c.Request.Context(), userID, req.Username)
	if err != nil {
		return asBizError(err)
	}

	token, err := jwt.GenerateToken(
		[]byte(a.Config.Jwt.Secret),
		acc.ID,
		"access",
		time.Duration(a.Config.Jwt.Expire)*time.Second,
	)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.RegisterResp{
		UserID:       acc.ID,
		Username:     acc.Username,
		ReferralCode: acc.ReferralCode,
		Rank:         acc.Rank,
		AccessToken:  token,
	})
	return nil
}

func (a *Account) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	acc, err := a.Account.GetAccount(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, types.AccountDetail{
		UserID:            acc.ID,
		Username:          acc.Username,
		ReferralCode:      acc.ReferralCode,
		Rank:              acc.Rank,
		Balance:           acc.AvailablePoints,
		TotalEarned:       acc.TotalPoints,
		ProfileBonusRate:  acc.ProfileBonusRate,
		ReferralBonusRate: acc.ReferralBonusRate,
		PhoneVerified:     acc.PhoneVerified,
		IdentityVerified:  acc.IdentityVerified,
		TotalReferrals:    acc.TotalReferrals,
		Frozen:            acc.Frozen,
	})
	return nil
}

// UpdateProfile 资料完善，满足条件的一次性拿到资料加成
func (a *Account) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req service.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	acc, err := a.Account.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{
		"profile_complete":   req.Complete(),
		"profile_bonus_rate": acc.ProfileBonusRate,
	})
	return nil
}

func (a *Account) VerifyPhone(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	if err := a.Account.MarkPhoneVerified(c.Request.Context(), userID); err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{"phone_verified": true})
	return nil
}

func (a *Account) VerifyIdentity(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	if err := a.Account.MarkIdentityVerified(c.Request.Context(), userID); err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{"identity_verified": true})
	return nil
}
