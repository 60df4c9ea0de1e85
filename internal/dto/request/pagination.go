package request

import "hotel-booking/pkg/utils"

const (
	DefaultLimit = 1000
	MaxLimit     = 1000
)

type PaginatedRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Normalized applies the default and maximum limit and drops negative offsets.
func (p PaginatedRequest) Normalized() PaginatedRequest {
	return PaginatedRequest{
		Limit:  utils.ClampLimit(p.Limit, DefaultLimit, MaxLimit),
		Offset: utils.ClampOffset(p.Offset),
	}
}
