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

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	worker := r.Group("/applications")
	worker.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleWorker))
	{
		worker.GET("/my", h.ListMyApplications)
		worker.POST("/:applicationId/cancel", h.Cancel)
	}

	hotel := r.Group("/applications")
	hotel.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleHotel))
	{
		hotel.POST("/:applicationId/accept", h.Accept)
		hotel.POST("/:applicationId/decline", h.Decline)
	}
}

func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	resp, err := h.applicationService.ListWorkerApplications(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Cancel(c *gin.Context) {
	err := h.applicationService.Cancel(c.Request.Context(), middleware.ActorID(c), c.Param("applicationId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application cancelled successfully"})
}

func (h *ApplicationHandler) Accept(c *gin.Context) {
	resp, err := h.applicationService.Accept(c.Request.Context(), middleware.ActorID(c), c.Param("applicationId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Application accepted successfully",
		"shift_id":  resp.ShiftID,
		"promotion": resp.Promotion,
	})
}

func (h *ApplicationHandler) Decline(c *gin.Context) {
	// Body is optional: a decline without a reason is valid.
	var req dto.DeclineApplicationRequest
	if c.Request.ContentLength > 0 {
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
	}

	err := h.applicationService.Decline(c.Request.Context(), middleware.ActorID(c), c.Param("applicationId"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application declined successfully"})
}
