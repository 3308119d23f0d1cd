package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	applications, total, err := h.applications.List(services.ApplicationFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		StartupID:      uintQuery(ctx, "startup_id"),
		ProgramID:      uintQuery(ctx, "program_id"),
		Status:         ctx.Query("status"),
		Params:         params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Applications retrieved successfully", response.List{
		Data: applications,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *ApplicationHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	application, err := h.applications.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Application retrieved successfully", application)
}

func (h *ApplicationHandler) Create(ctx *gin.Context) {
	var input services.CreateApplicationInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	application, err := h.applications.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Application submitted successfully", application)
}

func (h *ApplicationHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateApplicationInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	application, err := h.applications.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Application updated successfully", application)
}

func (h *ApplicationHandler) UpdateStatus(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var req ApplicationStatusRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	application, err := h.applications.UpdateStatus(id, req.Status)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Application status updated successfully", application)
}

func (h *ApplicationHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.applications.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Application deleted successfully", nil)
}
