package volunteering

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/volunteering"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/httputil"
)

type Handler struct {
	service *volunteering.Service
}

func NewHandler(service *volunteering.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) LogHours(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid application ID"))
		return
	}

	var req model.LogHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	// Organization actors verify at log time; volunteer entries stay
	// unverified until an organization logs on their behalf.
	var verifier *uuid.UUID
	if model.UserRole(c.GetString("user_role")) == model.RoleOrganization {
		actor := handler.ActorID(c)
		verifier = &actor
	}

	app, err := h.service.LogHours(c.Request.Context(), id, &req, verifier)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, app)
}

func (h *Handler) UpdateRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid application ID"))
		return
	}

	var req model.UpdateVolunteeringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	app, err := h.service.UpdateRecord(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, app)
}

func (h *Handler) SubmitFeedback(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid application ID"))
		return
	}

	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	var (
		app  *model.Application
		err2 error
	)
	if model.UserRole(c.GetString("user_role")) == model.RoleOrganization {
		app, err2 = h.service.SubmitOrganizationFeedback(c.Request.Context(), id, &req)
	} else {
		app, err2 = h.service.SubmitVolunteerFeedback(c.Request.Context(), id, &req)
	}
	if err2 != nil {
		httputil.RespondWithError(c, err2)
		return
	}

	httputil.RespondWithSuccess(c, app)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	{
		applications.POST("/:id/hours", h.LogHours)
		applications.PATCH("/:id/volunteering", h.UpdateRecord)
		applications.POST("/:id/volunteering/feedback", h.SubmitFeedback)
	}
}
