package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type ProgramHandler struct {
	programs *services.ProgramService
}

func NewProgramHandler(programs *services.ProgramService) *ProgramHandler {
	return &ProgramHandler{programs: programs}
}

func (h *ProgramHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	programs, total, err := h.programs.List(services.ProgramFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		Search:         ctx.Query("search"),
		Params:         params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Programs retrieved successfully", response.List{
		Data: programs,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *ProgramHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	program, err := h.programs.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Program retrieved successfully", program)
}

func (h *ProgramHandler) Create(ctx *gin.Context) {
	var input services.CreateProgramInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	program, err := h.programs.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Program created successfully", program)
}

func (h *ProgramHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateProgramInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	program, err := h.programs.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Program updated successfully", program)
}

func (h *ProgramHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.programs.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Program deleted successfully", nil)
}
