package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type MentorshipHandler struct {
	mentorships *services.MentorshipService
}

func NewMentorshipHandler(mentorships *services.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{mentorships: mentorships}
}

func (h *MentorshipHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	mentorships, total, err := h.mentorships.List(services.MentorshipFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		MentorID:       uintQuery(ctx, "mentor_id"),
		StartupID:      uintQuery(ctx, "startup_id"),
		Status:         ctx.Query("status"),
		Params:         params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Mentorships retrieved successfully", response.List{
		Data: mentorships,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *MentorshipHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	mentorship, err := h.mentorships.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Mentorship retrieved successfully", mentorship)
}

func (h *MentorshipHandler) Create(ctx *gin.Context) {
	var input services.CreateMentorshipInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	mentorship, err := h.mentorships.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Mentorship created successfully", mentorship)
}

func (h *MentorshipHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateMentorshipInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	mentorship, err := h.mentorships.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Mentorship updated successfully", mentorship)
}

func (h *MentorshipHandler) End(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	mentorship, err := h.mentorships.End(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Mentorship ended successfully", mentorship)
}

func (h *MentorshipHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.mentorships.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Mentorship deleted successfully", nil)
}
