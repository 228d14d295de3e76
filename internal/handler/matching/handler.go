package matching

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/matching"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/httputil"
)

type Handler struct {
	service *matching.Service
}

func NewHandler(service *matching.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Recalculate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid application ID"))
		return
	}

	app, err := h.service.Calculate(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, app)
}

func (h *Handler) SetFactors(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid application ID"))
		return
	}

	var req model.MatchingFactorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	app, err := h.service.SetFactors(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, app)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	{
		applications.POST("/:id/matching/recalculate", h.Recalculate)
		applications.PUT("/:id/matching/factors", h.SetFactors)
	}
}
