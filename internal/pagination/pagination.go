package pagination

import "strconv"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Params struct {
	Page     int
	PageSize int
	Offset   int
	Limit    int
}

type Meta struct {
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// Parse converts raw page/pageSize query values into clamped offset/limit
// params. Out-of-range or unparseable input clamps, it never errors.
func Parse(page, pageSize string) Params {
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		p = 1
	}

	size, err := strconv.Atoi(pageSize)
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Params{
		Page:     p,
		PageSize: size,
		Offset:   (p - 1) * size,
		Limit:    size,
	}
}

func NewMeta(page, pageSize int, total int64) Meta {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return Meta{
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
