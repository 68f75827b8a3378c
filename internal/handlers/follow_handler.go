package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venturelink_backend/internal/middleware"
	"venturelink_backend/internal/services"
)

type FollowHandler struct {
	*BaseHandler
	followService *services.FollowService
}

func NewFollowHandler(base *BaseHandler, followService *services.FollowService) *FollowHandler {
	return &FollowHandler{
		BaseHandler:   base,
		followService: followService,
	}
}

func (h *FollowHandler) RegisterRoutes(r *gin.RouterGroup) {
	follows := r.Group("/companies/:companyId/follow")
	follows.Use(middleware.AuthMiddleware())
	{
		follows.POST("", h.ToggleFollow)
		follows.GET("", h.GetFollowState)
	}

	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/following", h.ListFollowing)
	}
}

// ToggleFollow flips the caller's follow state for the company.
func (h *FollowHandler) ToggleFollow(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	state, err := h.followService.ToggleFollow(userID, c.Param("companyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *FollowHandler) GetFollowState(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	state, err := h.followService.IsFollowing(userID, c.Param("companyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *FollowHandler) ListFollowing(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	companies, err := h.followService.ListFollowedCompanies(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"total":     len(companies),
	})
}
