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

type Gacha struct {
	Config *config.Config
	Gacha  service.IGachaService
}

func (g *Gacha) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(g.Config.Jwt.Secret))
	group := r.Group("/v1/gacha", authorize)
	group.GET("/status", context.Wrap(g.Status))
	group.POST("/play", context.Wrap(g.Play))
}

func (g *Gacha) Status(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	canPlay, remaining, err := g.Gacha.CanPlay(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, types.GachaStatus{
		CanPlay:        canPlay,
		RemainingToday: remaining,
		DailyQuota:     g.Config.Rewards.GachaDailyQuota,
	})
	return nil
}

func (g *Gacha) Play(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	resp, err := g.Gacha.Play(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}
