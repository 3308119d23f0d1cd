package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	contacts, total, err := h.contacts.List(services.ContactFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		Search:         ctx.Query("search"),
		Params:         params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Contacts retrieved successfully", response.List{
		Data: contacts,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *ContactHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	contact, err := h.contacts.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Contact retrieved successfully", contact)
}

func (h *ContactHandler) Create(ctx *gin.Context) {
	var input services.CreateContactInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	contact, err := h.contacts.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Contact created successfully", contact)
}

func (h *ContactHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateContactInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	contact, err := h.contacts.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Contact updated successfully", contact)
}

func (h *ContactHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.contacts.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Contact deleted successfully", nil)
}
