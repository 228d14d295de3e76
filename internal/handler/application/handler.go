package application

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/handler"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/service/application"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/httputil"
)

type Handler struct {
	service *application.Service
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SubmitApplication(c *gin.Context) {
	var req model.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	app, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, app)
}

func (h *Handler) GetApplication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid application ID"))
		return
	}

	app, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, app)
}

func (h *Handler) TransitionStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid application ID"))
		return
	}

	var req model.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	app, err := h.service.TransitionStatus(c.Request.Context(), id, req.Status, handler.ActorID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, app)
}

func (h *Handler) SubmitReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid application ID"))
		return
	}

	var req model.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	app, err := h.service.SubmitReview(c.Request.Context(), id, handler.ActorID(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, app)
}

func (h *Handler) ListApplications(c *gin.Context) {
	var p model.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	ctx := c.Request.Context()

	if oid, vid := c.Query("opportunity_id"), c.Query("volunteer_id"); oid != "" && vid != "" {
		opportunityID, err := uuid.Parse(oid)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid opportunity ID"))
			return
		}
		volunteerID, err := uuid.Parse(vid)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid volunteer ID"))
			return
		}
		app, err := h.service.GetByPair(ctx, opportunityID, volunteerID)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, []*model.Application{app})
		return
	}

	if id := c.Query("campaign_id"); id != "" {
		campaignID, err := uuid.Parse(id)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid campaign ID"))
			return
		}
		apps, err := h.service.ListByCampaign(ctx, campaignID, p)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, apps)
		return
	}

	if id := c.Query("volunteer_id"); id != "" {
		volunteerID, err := uuid.Parse(id)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid volunteer ID"))
			return
		}
		apps, err := h.service.ListByVolunteer(ctx, volunteerID, p)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, apps)
		return
	}

	if status := c.Query("status"); status != "" {
		apps, err := h.service.ListByStatus(ctx, model.ApplicationStatus(status), p)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, apps)
		return
	}

	c.JSON(http.StatusBadRequest, handler.NewErrorResponse("one of campaign_id, volunteer_id or status is required"))
}

// ListRanked serves the ranked read paths for an opportunity: by match
// score, by review score, or by upcoming interview date.
func (h *Handler) ListRanked(c *gin.Context) {
	opportunityID, err := uuid.Parse(c.Query("opportunity_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid opportunity ID"))
		return
	}

	var p model.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	var apps []*model.Application
	switch c.Query("order_by") {
	case "match_score":
		apps, err = h.service.ListByMatchScore(c.Request.Context(), opportunityID, p)
	case "review_score":
		apps, err = h.service.ListByReviewScore(c.Request.Context(), opportunityID, p)
	case "interview_date":
		apps, err = h.service.ListByInterviewDate(c.Request.Context(), opportunityID, p)
	default:
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("order_by must be one of match_score, review_score, interview_date"))
		return
	}
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, apps)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	{
		applications.POST("", h.SubmitApplication)
		applications.GET("", h.ListApplications)
		applications.GET("/ranked", h.ListRanked)
		applications.GET("/:id", h.GetApplication)
		applications.POST("/:id/transition", h.TransitionStatus)
		applications.PUT("/:id/review", h.SubmitReview)
	}
}
