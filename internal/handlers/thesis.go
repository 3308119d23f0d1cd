package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type ThesisHandler struct {
	theses *services.ThesisService
}

func NewThesisHandler(theses *services.ThesisService) *ThesisHandler {
	return &ThesisHandler{theses: theses}
}

func (h *ThesisHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	theses, total, err := h.theses.List(services.ThesisFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		Search:         ctx.Query("search"),
		Params:         params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Theses retrieved successfully", response.List{
		Data: theses,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *ThesisHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	thesis, err := h.theses.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Thesis retrieved successfully", thesis)
}

func (h *ThesisHandler) Create(ctx *gin.Context) {
	var input services.CreateThesisInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	thesis, err := h.theses.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Thesis created successfully", thesis)
}

func (h *ThesisHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateThesisInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	thesis, err := h.theses.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Thesis updated successfully", thesis)
}

func (h *ThesisHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.theses.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Thesis deleted successfully", nil)
}
