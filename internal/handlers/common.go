package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/pagination"
)

// pageParams reads page/pageSize, accepting "limit" as a pageSize alias.
func pageParams(ctx *gin.Context) pagination.Params {
	pageSize := ctx.Query("pageSize")
	if pageSize == "" {
		pageSize = ctx.Query("limit")
	}
	return pagination.Parse(ctx.Query("page"), pageSize)
}

func idParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.BadRequest("Invalid " + name + " parameter")
	}

	return uint(id), nil
}

func uintQuery(ctx *gin.Context, name string) uint {
	id, err := strconv.ParseUint(ctx.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
