package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/services"
	"github.com/accelhub-dev/accelhub/internal/ws"
)

type ClaimHandler struct {
	claims *services.ClaimService
	feed   *ws.ActivityHub
}

func NewClaimHandler(claims *services.ClaimService, feed *ws.ActivityHub) *ClaimHandler {
	return &ClaimHandler{claims: claims, feed: feed}
}

type ClaimStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ClaimHandler) List(ctx *gin.Context) {
	params := pageParams(ctx)

	claims, total, err := h.claims.List(services.ClaimFilter{
		OrganizationID:     uintQuery(ctx, "organization_id"),
		VehicleID:          uintQuery(ctx, "vehicle_id"),
		InsuranceCompanyID: uintQuery(ctx, "insurance_company_id"),
		Status:             ctx.Query("status"),
		Params:             params,
	})

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Claims retrieved successfully", response.List{
		Data: claims,
		Meta: pagination.NewMeta(params.Page, params.PageSize, total),
	})
}

func (h *ClaimHandler) Get(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	claim, err := h.claims.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Claim retrieved successfully", claim)
}

func (h *ClaimHandler) Create(ctx *gin.Context) {
	var input services.CreateClaimInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	claim, err := h.claims.Create(input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	h.broadcast(claim.OrganizationID, "created")
	response.Created(ctx, "Claim filed successfully", claim)
}

func (h *ClaimHandler) Update(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var input services.UpdateClaimInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	claim, err := h.claims.Update(id, input)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	h.broadcast(claim.OrganizationID, "updated")
	response.OK(ctx, "Claim updated successfully", claim)
}

func (h *ClaimHandler) UpdateStatus(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	var req ClaimStatusRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	claim, err := h.claims.UpdateStatus(id, req.Status)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	h.broadcast(claim.OrganizationID, "status-changed")
	response.OK(ctx, "Claim status updated successfully", claim)
}

func (h *ClaimHandler) Delete(ctx *gin.Context) {
	id, err := idParam(ctx, "id")

	if err != nil {
		response.Error(ctx, err)
		return
	}

	claim, err := h.claims.Get(id)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	if err := h.claims.Delete(id); err != nil {
		response.Error(ctx, err)
		return
	}

	h.broadcast(claim.OrganizationID, "deleted")
	response.OK(ctx, "Claim deleted successfully", nil)
}

func (h *ClaimHandler) broadcast(organizationID uint, action string) {
	if h.feed != nil {
		h.feed.Broadcast(strconv.FormatUint(uint64(organizationID), 10), "claim", action)
	}
}
