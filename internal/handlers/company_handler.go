package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venturelink_backend/internal/middleware"
	"venturelink_backend/internal/models"
	"venturelink_backend/internal/services"
	"venturelink_backend/internal/services/dto"
)

type CompanyHandler struct {
	*BaseHandler
	companyService *services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/companies")
	{
		public.GET("", h.ListCompanies)
		public.GET("/:companyId", h.GetCompany)
	}

	// Protected routes - company owners
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.POST("", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin), h.CreateCompany)
		companies.GET("/me", h.GetMyCompany)
		companies.PUT("/:companyId", h.UpdateCompany)
	}
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	sector := c.Query("sector")
	limit := ParseQueryInt(c, "limit", 20)
	companies, err := h.companyService.ListCompanies(sector, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"total":     len(companies),
	})
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Param("companyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	company, err := h.companyService.CreateCompany(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) GetMyCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	company, err := h.companyService.GetOwnCompany(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	company, err := h.companyService.UpdateCompany(userID, c.Param("companyId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
