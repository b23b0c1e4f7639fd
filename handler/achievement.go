package handler

import (
	"net/http"

	"pointmax/config"
	"pointmax/middleware"
	"pointmax/pkg/context"
	"pointmax/pkg/response"
	"pointmax/service"

	"github.com/gin-gonic/gin"
)

type Achievement struct {
	Config      *config.Config
	Achievement service.IAchievementService
}

func (a *Achievement) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	g := r.Group("/v1/achievements", authorize)
	g.GET("", context.Wrap(a.List))
	g.POST("/evaluate", context.Wrap(a.Evaluate))
}

func (a *Achievement) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	resp, err := a.Achievement.ListByUser(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}

// Evaluate 手动触发一轮成就评估（客户端在任务完成后轮询用）
func (a *Achievement) Evaluate(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	unlocked, err := a.Achievement.Evaluate(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{"unlocked": unlocked})
	return nil
}
