package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

type AddAttendeeRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}

func (h *EventHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	events, total, err := h.events.List(services.EventFilter{
		OrganizationID: uintQuery(ctx, "organization_id"),
		ProgramID:      uintQuery(ctx, "program_id"),
		Search:         ctx.Query("search"),
		Params:         params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Events retrieved successfully", response.List{
		Data: events,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *EventHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	event, err := h.events.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Event retrieved successfully", event)
}

func (h *EventHandler) Create(ctx *gin.Context) {
	var input services.CreateEventInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	event, err := h.events.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Event created successfully", event)
}

func (h *EventHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateEventInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	event, err := h.events.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Event updated successfully", event)
}

func (h *EventHandler) AddAttendee(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var req AddAttendeeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	attendee, err := h.events.AddAttendee(id, req.UserID, req.Role)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "Attendee added successfully", attendee)
}

func (h *EventHandler) RemoveAttendee(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	userID, err := idParam(ctx, "user_id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.events.RemoveAttendee(id, userID); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Attendee removed successfully", nil)
}

func (h *EventHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.events.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Event deleted successfully", nil)
}
