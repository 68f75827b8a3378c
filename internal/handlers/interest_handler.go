package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venturelink_backend/internal/middleware"
	"venturelink_backend/internal/models"
	"venturelink_backend/internal/services"
	"venturelink_backend/internal/services/dto"
)

type InterestHandler struct {
	*BaseHandler
	interestService *services.InterestService
}

func NewInterestHandler(base *BaseHandler, interestService *services.InterestService) *InterestHandler {
	return &InterestHandler{
		BaseHandler:     base,
		interestService: interestService,
	}
}

func (h *InterestHandler) RegisterRoutes(r *gin.RouterGroup) {
	interests := r.Group("/interests")
	interests.Use(middleware.AuthMiddleware())
	{
		interests.POST("", middleware.RequireRoles(models.UserRoleInvestor, models.UserRoleAdmin), h.SubmitInterest)
		interests.GET("/my", h.ListMyInterests)
		interests.GET("/:interestId", h.GetInterest)
		interests.PUT("/:interestId/status", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin), h.TransitionInterest)
	}
}

// SubmitInterest declares the caller's interest in a round. The interest
// starts pending; the company owner is notified.
func (h *InterestHandler) SubmitInterest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.SubmitInterestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	interest, err := h.interestService.SubmitInterest(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interest)
}

// ListMyInterests returns the caller's own submitted interests, newest first.
func (h *InterestHandler) ListMyInterests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	interests, err := h.interestService.ListInterestsByInvestor(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"interests": interests,
		"total":     len(interests),
	})
}

// GetInterest returns the denormalized detail view. Visible only to the
// submitting investor and the company owner.
func (h *InterestHandler) GetInterest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	interest, err := h.interestService.GetInterestDetail(userID, c.Param("interestId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interest)
}

// TransitionInterest accepts or rejects a pending interest. Company owner
// only; the decision is final.
func (h *InterestHandler) TransitionInterest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.TransitionInterestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	interest, err := h.interestService.TransitionInterest(userID, c.Param("interestId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interest)
}
