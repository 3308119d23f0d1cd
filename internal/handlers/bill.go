package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type BillHandler struct {
	bills *services.BillService
}

func NewBillHandler(bills *services.BillService) *BillHandler {
	return &BillHandler{bills: bills}
}

func (h *BillHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	filter := services.BillFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		ClaimID:        uintQuery(ctx, "claim_id"),
		Params:         params,
	}

	if raw := ctx.Query("paid"); raw != "" {
		if paid, err := strconv.ParseBool(raw); err == nil {
			filter.Paid = &paid
		}
	}

	bills, total, err := h.bills.List(filter)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Bills retrieved successfully", response.List{
		Data: bills,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *BillHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	bill, err := h.bills.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Bill retrieved successfully", bill)
}

func (h *BillHandler) Create(ctx *gin.Context) {
	var input services.CreateBillInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	bill, err := h.bills.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Bill created successfully", bill)
}

func (h *BillHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateBillInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	bill, err := h.bills.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Bill updated successfully", bill)
}

func (h *BillHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.bills.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Bill deleted successfully", nil)
}
