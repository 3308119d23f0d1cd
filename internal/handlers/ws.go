package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/ws"
)

type ActivityFeedHandler struct {
	hub *ws.ActivityHub
}

func NewActivityFeedHandler(hub *ws.ActivityHub) *ActivityFeedHandler {
	return &ActivityFeedHandler{hub: hub}
}

func (h *ActivityFeedHandler) Serve(ctx *gin.Context) {
	organizationID := ctx.Param("organization_id")

	if organizationID == "" {
		response.Error(ctx, apperr.BadRequest("Organization ID is required"))
		return
	}

	h.hub.Serve(ctx.Writer, ctx.Request, organizationID)
}
