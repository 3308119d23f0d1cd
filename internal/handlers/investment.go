package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type InvestmentHandler struct {
	investments *services.InvestmentService
}

func NewInvestmentHandler(investments *services.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investments: investments}
}

func (h *InvestmentHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	investments, total, err := h.investments.List(services.InvestmentFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		StartupID:      uintQuery(ctx, "startup_id"),
		Round:          ctx.Query("round"),
		Params:         params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Investments retrieved successfully", response.List{
		Data: investments,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *InvestmentHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	investment, err := h.investments.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Investment retrieved successfully", investment)
}

func (h *InvestmentHandler) Create(ctx *gin.Context) {
	var input services.CreateInvestmentInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	investment, err := h.investments.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Investment recorded successfully", investment)
}

func (h *InvestmentHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateInvestmentInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	investment, err := h.investments.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Investment updated successfully", investment)
}

func (h *InvestmentHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.investments.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Investment deleted successfully", nil)
}
