package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type VehicleHandler struct {
	vehicles *services.VehicleService
}

func NewVehicleHandler(vehicles *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

func (h *VehicleHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	vehicles, total, err := h.vehicles.List(services.VehicleFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		DriverID:       uintQuery(ctx, "driver_id"),
		Search:         ctx.Query("search"),
		Params:         params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Vehicles retrieved successfully", response.List{
		Data: vehicles,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *VehicleHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	vehicle, err := h.vehicles.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Vehicle retrieved successfully", vehicle)
}

func (h *VehicleHandler) Create(ctx *gin.Context) {
	var input services.CreateVehicleInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	vehicle, err := h.vehicles.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Vehicle created successfully", vehicle)
}

func (h *VehicleHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateVehicleInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	vehicle, err := h.vehicles.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Vehicle updated successfully", vehicle)
}

func (h *VehicleHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.vehicles.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Vehicle deleted successfully", nil)
}
