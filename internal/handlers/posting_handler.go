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

type PostingHandler struct {
	*BaseHandler
	postingService     *services.PostingService
	applicationService *services.ApplicationService
}

func NewPostingHandler(base *BaseHandler, postingService *services.PostingService, applicationService *services.ApplicationService) *PostingHandler {
	return &PostingHandler{
		BaseHandler:        base,
		postingService:     postingService,
		applicationService: applicationService,
	}
}

func (h *PostingHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public read
	public := r.Group("/postings")
	{
		public.GET("/:postingId", h.GetPosting)
	}

	// Worker listing: visibility is filtered per worker, so even the
	// browse route requires identity.
	worker := r.Group("/postings")
	worker.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleWorker))
	{
		worker.GET("", h.ListVisiblePostings)
		worker.POST("/:postingId/applications", h.Apply)
	}

	// Hotel side
	hotel := r.Group("/postings")
	hotel.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleHotel, models.RoleAdmin))
	{
		hotel.POST("", h.CreatePosting)
		hotel.GET("/my", h.ListMyPostings)
		hotel.GET("/:postingId/applications", h.ListPostingApplications)
	}
}

func (h *PostingHandler) CreatePosting(c *gin.Context) {
	var req dto.CreatePostingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.postingService.CreatePosting(c.Request.Context(), middleware.ActorID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Posting created successfully",
		"posting_id": resp.PostingID,
	})
}

func (h *PostingHandler) GetPosting(c *gin.Context) {
	resp, err := h.postingService.GetPosting(c.Request.Context(), c.Param("postingId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PostingHandler) ListVisiblePostings(c *gin.Context) {
	resp, err := h.postingService.ListVisiblePostings(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PostingHandler) ListMyPostings(c *gin.Context) {
	resp, err := h.postingService.ListHotelPostings(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PostingHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Apply(c.Request.Context(), middleware.ActorID(c), c.Param("postingId"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Application submitted successfully",
		"application_id": resp.ApplicationID,
	})
}

func (h *PostingHandler) ListPostingApplications(c *gin.Context) {
	resp, err := h.applicationService.ListPostingApplications(c.Request.Context(), middleware.ActorID(c), c.Param("postingId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
