package handler

import (
	"net/http"
	"strconv"

	"pointmax/config"
	"pointmax/middleware"
	"pointmax/pkg/context"
	"pointmax/pkg/response"
	"pointmax/service"

	"github.com/gin-gonic/gin"
)

type Leaderboard struct {
	Config  *config.Config
	Ranking service.IRankingService
}

func (l *Leaderboard) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(l.Config.Jwt.Secret))
	g := r.Group("/v1/leaderboard", authorize)
	g.GET("", context.Wrap(l.Top))
	g.GET("/me", context.Wrap(l.Me))
}

func (l *Leaderboard) Top(c *gin.Context) error {
	n, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	entries, err := l.Ranking.TopN(c.Request.Context(), n)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{"entries": entries})
	return nil
}

func (l *Leaderboard) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	resp, err := l.Ranking.MyRank(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}
