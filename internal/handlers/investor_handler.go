package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venturelink_backend/internal/middleware"
	"venturelink_backend/internal/models"
	"venturelink_backend/internal/services"
	"venturelink_backend/internal/services/dto"
)

type InvestorHandler struct {
	*BaseHandler
	investorService *services.InvestorService
}

func NewInvestorHandler(base *BaseHandler, investorService *services.InvestorService) *InvestorHandler {
	return &InvestorHandler{
		BaseHandler:     base,
		investorService: investorService,
	}
}

func (h *InvestorHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/investors")
	{
		public.GET("/:investorId", h.GetInvestor)
	}

	// Protected routes - investor accounts
	investors := r.Group("/investors")
	investors.Use(middleware.AuthMiddleware())
	{
		investors.POST("", middleware.RequireRoles(models.UserRoleInvestor, models.UserRoleAdmin), h.CreateInvestor)
		investors.GET("/me", h.GetMyInvestor)
		investors.PUT("/:investorId", h.UpdateInvestor)
	}
}

func (h *InvestorHandler) GetInvestor(c *gin.Context) {
	investor, err := h.investorService.GetInvestor(c.Param("investorId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, investor)
}

func (h *InvestorHandler) CreateInvestor(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.CreateInvestorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	investor, err := h.investorService.CreateInvestor(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, investor)
}

func (h *InvestorHandler) GetMyInvestor(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	investor, err := h.investorService.GetOwnInvestor(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, investor)
}

func (h *InvestorHandler) UpdateInvestor(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvestorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	investor, err := h.investorService.UpdateInvestor(userID, c.Param("investorId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, investor)
}
