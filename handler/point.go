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

type Point struct {
	Config *config.Config
	Ledger service.ILedgerService
	Earn   service.IEarnService
}

func (p *Point) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	g := r.Group("/v1/points", authorize)
	g.GET("/balance", context.Wrap(p.Balance))
	g.GET("/records", context.Wrap(p.GetRecords))
	g.POST("/earn/preview", context.Wrap(p.PreviewEarn))
	g.POST("/earn", context.Wrap(p.Earned))
	g.POST("/repair", context.Wrap(p.Repair))
}

func (p *Point) Balance(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	resp, err := p.Ledger.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (p *Point) GetRecords(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.ListPointRecordsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	resp, err := p.Ledger.ListRecords(c.Request.Context(), userID, req.Action, req.Cursor, req.Limit)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}

// PreviewEarn 只算不入账，给前端展示预计到账
func (p *Point) PreviewEarn(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.EarnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	breakdown, err := p.Earn.ComputeEarnedPoints(c.Request.Context(), userID, req.BasePoints, req.Category)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, breakdown)
	return nil
}

// Earned 任务/问卷完成入账
func (p *Point) Earned(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.EarnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeValidation, "参数格式错误: "+err.Error())
	}

	resp, err := p.Earn.Complete(c.Request.Context(), userID, req)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}

// Repair 从流水重算余额，解除冻结
func (p *Point) Repair(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	acc, err := p.Ledger.Repair(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, types.PointsAccount{
		Balance:        acc.AvailablePoints,
		TotalEarned:    acc.TotalPoints,
		RankPoints:     acc.RankPoints,
		Rank:           acc.Rank,
		RankMultiplier: service.RankFor(acc.RankPoints).Multiplier,
	})
	return nil
}
