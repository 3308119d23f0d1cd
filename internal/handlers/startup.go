package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
	"github.com/accelhub-dev/accelhub/internal/ws"
)

type StartupHandler struct {
	startups *services.StartupService
	feed     *ws.ActivityHub
}

func NewStartupHandler(startups *services.StartupService, feed *ws.ActivityHub) *StartupHandler {
	return &StartupHandler{startups: startups, feed: feed}
}

type StageChangeRequest struct {
	Stage string `json:"stage" binding:"required"`
}

func (h *StartupHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	startups, total, err := h.startups.List(services.StartupFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		Stage:          ctx.Query("stage"),
		Search:         ctx.Query("search"),
		Params:         params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Startups retrieved successfully", response.List{
		Data: startups,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *StartupHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	startup, err := h.startups.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Startup retrieved successfully", startup)
}

func (h *StartupHandler) Create(ctx *gin.Context) {
	var input services.CreateStartupInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	startup, err := h.startups.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	h.broadcast(startup.OrganizationID, "created")
	response.Created(ctx, "Startup created successfully", startup)
}

func (h *StartupHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateStartupInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	startup, err := h.startups.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	h.broadcast(startup.OrganizationID, "updated")
	response.OK(ctx, "Startup updated successfully", startup)
}

func (h *StartupHandler) ChangeStage(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var req StageChangeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	startup, err := h.startups.ChangeStage(id, req.Stage)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	h.broadcast(startup.OrganizationID, "stage-changed")
	response.OK(ctx, "Startup stage changed successfully", startup)
}

func (h *StartupHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	startup, err := h.startups.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.startups.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	h.broadcast(startup.OrganizationID, "deleted")
	response.OK(ctx, "Startup deleted successfully", nil)
}

func (h *StartupHandler) broadcast(organizationID uint, action string) {
	if h.feed != nil {
		h.feed.Broadcast(strconv.FormatUint(uint64(organizationID), 10), "startup", action)
	}
}
