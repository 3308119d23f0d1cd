package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type DriverHandler struct {
	drivers *services.DriverService
}

func NewDriverHandler(drivers *services.DriverService) *DriverHandler {
	return &DriverHandler{drivers: drivers}
}

func (h *DriverHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	drivers, total, err := h.drivers.List(services.DriverFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		Search:         ctx.Query("search"),
		Params:         params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Drivers retrieved successfully", response.List{
		Data: drivers,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *DriverHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	driver, err := h.drivers.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Driver retrieved successfully", driver)
}

func (h *DriverHandler) Create(ctx *gin.Context) {
	var input services.CreateDriverInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	driver, err := h.drivers.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Driver created successfully", driver)
}

func (h *DriverHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateDriverInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	driver, err := h.drivers.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Driver updated successfully", driver)
}

func (h *DriverHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.drivers.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Driver deleted successfully", nil)
}
