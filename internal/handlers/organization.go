package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type OrganizationHandler struct {
	organizations *services.OrganizationService
}

func NewOrganizationHandler(organizations *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{organizations: organizations}
}

func (h *OrganizationHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	organizations, total, err := h.organizations.List(services.OrganizationFilter{
		Search: ctx.Query("search"),
		Params: params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Organizations retrieved successfully", response.List{
		Data: organizations,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *OrganizationHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	organization, err := h.organizations.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Organization retrieved successfully", organization)
}

func (h *OrganizationHandler) Create(ctx *gin.Context) {
	var input services.CreateOrganizationInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	organization, err := h.organizations.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Organization created successfully", organization)
}

func (h *OrganizationHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateOrganizationInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	organization, err := h.organizations.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Organization updated successfully", organization)
}

func (h *OrganizationHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.organizations.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Organization deleted successfully", nil)
}
