package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

// Handlers for the soft-deleted directory entities. Delete returns the row so
// clients can see the INACTIVE status.

func directoryFilter(ctx *gin.Context, params pagination.Params) services.DirectoryFilter {
	return services.DirectoryFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		Status:         ctx.Query("status"),
		Search:         ctx.Query("search"),
		Params:         params,
	}
}

// --- Hubs ---

type HubHandler struct {
	hubs *services.HubService
}

func NewHubHandler(hubs *services.HubService) *HubHandler {
	return &HubHandler{hubs: hubs}
}

func (h *HubHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	hubs, total, err := h.hubs.List(directoryFilter(ctx, params))

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Hubs retrieved successfully", response.List{
		Data: hubs,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *HubHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	hub, err := h.hubs.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Hub retrieved successfully", hub)
}

func (h *HubHandler) Create(ctx *gin.Context) {
	var input services.CreateHubInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	hub, err := h.hubs.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Hub created successfully", hub)
}

func (h *HubHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateHubInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	hub, err := h.hubs.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Hub updated successfully", hub)
}

func (h *HubHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	hub, err := h.hubs.Delete(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Hub deactivated successfully", hub)
}

// --- Insurance companies ---

type InsuranceCompanyHandler struct {
	companies *services.InsuranceCompanyService
}

func NewInsuranceCompanyHandler(companies *services.InsuranceCompanyService) *InsuranceCompanyHandler {
	return &InsuranceCompanyHandler{companies: companies}
}

func (h *InsuranceCompanyHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	companies, total, err := h.companies.List(directoryFilter(ctx, params))

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Insurance companies retrieved successfully", response.List{
		Data: companies,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *InsuranceCompanyHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	company, err := h.companies.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Insurance company retrieved successfully", company)
}

func (h *InsuranceCompanyHandler) Create(ctx *gin.Context) {
	var input services.CreateInsuranceCompanyInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	company, err := h.companies.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Insurance company created successfully", company)
}

func (h *InsuranceCompanyHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateInsuranceCompanyInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	company, err := h.companies.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Insurance company updated successfully", company)
}

func (h *InsuranceCompanyHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	company, err := h.companies.Delete(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Insurance company deactivated successfully", company)
}

// --- Repair organizations ---

type RepairOrganizationHandler struct {
	organizations *services.RepairOrganizationService
}

func NewRepairOrganizationHandler(organizations *services.RepairOrganizationService) *RepairOrganizationHandler {
	return &RepairOrganizationHandler{organizations: organizations}
}

func (h *RepairOrganizationHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	organizations, total, err := h.organizations.List(directoryFilter(ctx, params))

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Repair organizations retrieved successfully", response.List{
		Data: organizations,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *RepairOrganizationHandler) Get(ctx *gin.Context) {
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

	response.OK(ctx, "Repair organization retrieved successfully", organization)
}

func (h *RepairOrganizationHandler) Create(ctx *gin.Context) {
	var input services.CreateRepairOrganizationInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	organization, err := h.organizations.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Repair organization created successfully", organization)
}

func (h *RepairOrganizationHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateRepairOrganizationInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	organization, err := h.organizations.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Repair organization updated successfully", organization)
}

func (h *RepairOrganizationHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	organization, err := h.organizations.Delete(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Repair organization deactivated successfully", organization)
}
