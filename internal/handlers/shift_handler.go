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

type ShiftHandler struct {
	*BaseHandler
	shiftService *services.ShiftService
}

func NewShiftHandler(base *BaseHandler, shiftService *services.ShiftService) *ShiftHandler {
	return &ShiftHandler{
		BaseHandler:  base,
		shiftService: shiftService,
	}
}

func (h *ShiftHandler) RegisterRoutes(r *gin.RouterGroup) {
	worker := r.Group("/shifts")
	worker.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleWorker))
	{
		worker.GET("/my", h.ListMyShifts)
		worker.POST("/:shiftId/rate-hotel", h.RateHotel)
	}

	hotel := r.Group("/shifts")
	hotel.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleHotel))
	{
		hotel.GET("/hotel", h.ListHotelShifts)
		hotel.POST("/:shiftId/complete", h.MarkComplete)
		hotel.POST("/:shiftId/rate-worker", h.RateWorker)
	}
}

func (h *ShiftHandler) ListMyShifts(c *gin.Context) {
	resp, err := h.shiftService.ListWorkerShifts(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ShiftHandler) ListHotelShifts(c *gin.Context) {
	resp, err := h.shiftService.ListHotelShifts(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ShiftHandler) MarkComplete(c *gin.Context) {
	resp, err := h.shiftService.MarkComplete(c.Request.Context(), middleware.ActorID(c), c.Param("shiftId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Shift marked as completed",
		"worker_promotion": resp.WorkerPromotion,
		"hotel_promotion":  resp.HotelPromotion,
	})
}

func (h *ShiftHandler) RateWorker(c *gin.Context) {
	var req dto.RateShiftRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	err := h.shiftService.RateWorker(c.Request.Context(), middleware.ActorID(c), c.Param("shiftId"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Worker rated successfully"})
}

func (h *ShiftHandler) RateHotel(c *gin.Context) {
	var req dto.RateShiftRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	err := h.shiftService.RateHotel(c.Request.Context(), middleware.ActorID(c), c.Param("shiftId"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hotel rated successfully"})
}
