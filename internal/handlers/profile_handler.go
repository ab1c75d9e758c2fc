package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub_backend/internal/middleware"
	"staffhub_backend/internal/models"
	"staffhub_backend/internal/services"
	"staffhub_backend/internal/services/dto"
	"staffhub_backend/pkg/apperrors"
)

type ProfileHandler struct {
	*BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public reputation summaries
	public := r.Group("/profiles")
	{
		public.GET("/workers/:workerId", h.GetWorkerProfile)
		public.GET("/hotels/:hotelId", h.GetHotelProfile)
	}

	// Admin verification lifecycle
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.PUT("/workers/:workerId/verification", h.VerifyWorker)
		admin.PUT("/workers/:workerId/training", h.SetWorkerTraining)
		admin.PUT("/workers/:workerId/ban", h.SetWorkerBanned)
		admin.PUT("/hotels/:hotelId/verification", h.VerifyHotel)
	}
}

func (h *ProfileHandler) GetWorkerProfile(c *gin.Context) {
	resp, err := h.profileService.GetWorkerProfile(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetHotelProfile(c *gin.Context) {
	resp, err := h.profileService.GetHotelProfile(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) VerifyWorker(c *gin.Context) {
	var req dto.VerifyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.profileService.VerifyWorker(c.Request.Context(), c.Param("workerId"), req.Status); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Worker verification updated"})
}

func (h *ProfileHandler) VerifyHotel(c *gin.Context) {
	var req dto.VerifyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.profileService.VerifyHotel(c.Request.Context(), c.Param("hotelId"), req.Status); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hotel verification updated"})
}

func (h *ProfileHandler) SetWorkerTraining(c *gin.Context) {
	var req dto.TrainingProgressRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.profileService.SetWorkerTraining(c.Request.Context(), c.Param("workerId"), req.Progress); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Training progress updated"})
}

func (h *ProfileHandler) SetWorkerBanned(c *gin.Context) {
	var req dto.BanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.profileService.SetWorkerBanned(c.Request.Context(), c.Param("workerId"), req.Banned); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Worker ban status updated"})
}
