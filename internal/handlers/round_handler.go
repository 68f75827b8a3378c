package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venturelink_backend/internal/middleware"
	"venturelink_backend/internal/models"
	"venturelink_backend/internal/services"
	"venturelink_backend/internal/services/dto"
)

type RoundHandler struct {
	*BaseHandler
	roundService    *services.RoundService
	interestService *services.InterestService
}

func NewRoundHandler(base *BaseHandler, roundService *services.RoundService, interestService *services.InterestService) *RoundHandler {
	return &RoundHandler{
		BaseHandler:     base,
		roundService:    roundService,
		interestService: interestService,
	}
}

func (h *RoundHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/rounds")
	{
		public.GET("", h.ListOpenRounds)
		public.GET("/:roundId", h.GetRound)
	}

	// Protected routes - company owners
	rounds := r.Group("/rounds")
	rounds.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin))
	{
		rounds.POST("", h.CreateRound)
		rounds.PUT("/:roundId", h.UpdateRound)
		rounds.DELETE("/:roundId", h.DeleteRound)
		rounds.POST("/:roundId/investors", h.AddInvestor)
		rounds.GET("/:roundId/interests", h.ListInterests)
	}

	// Company-scoped listing is public
	r.GET("/companies/:companyId/rounds", h.ListCompanyRounds)
}

func (h *RoundHandler) ListOpenRounds(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 20)
	rounds, err := h.roundService.ListOpenRounds(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rounds": rounds,
		"total":  len(rounds),
	})
}

func (h *RoundHandler) GetRound(c *gin.Context) {
	round, err := h.roundService.GetRound(c.Param("roundId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, round)
}

func (h *RoundHandler) ListCompanyRounds(c *gin.Context) {
	rounds, err := h.roundService.ListRoundsByCompany(c.Param("companyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rounds": rounds,
		"total":  len(rounds),
	})
}

func (h *RoundHandler) CreateRound(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.CreateRoundRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	round, err := h.roundService.CreateRound(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, round)
}

func (h *RoundHandler) UpdateRound(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateRoundRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	round, err := h.roundService.UpdateRound(userID, c.Param("roundId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, round)
}

func (h *RoundHandler) DeleteRound(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.roundService.DeleteRound(userID, c.Param("roundId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Round deleted successfully"})
}

func (h *RoundHandler) AddInvestor(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.AddRoundInvestorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	round, err := h.roundService.AddInvestorToRound(userID, c.Param("roundId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, round)
}

// ListInterests returns every interest on the round, company-owner only.
func (h *RoundHandler) ListInterests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	interests, err := h.interestService.ListInterestsByRound(userID, c.Param("roundId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"interests": interests,
		"total":     len(interests),
	})
}
