package request

import "github.com/shopspring/decimal"

// ListRoomsRequest carries the catalog query string. Numbers stay strings
// until validated.
type ListRoomsRequest struct {
	PriceGTE    string `json:"price_gte" validate:"omitempty,numeric"`
	PriceLTE    string `json:"price_lte" validate:"omitempty,numeric"`
	CapacityGTE string `json:"capacity_gte" validate:"omitempty,number"`
	CapacityLTE string `json:"capacity_lte" validate:"omitempty,number"`
	Checkin     string `json:"checkin" validate:"omitempty,date"`
	Checkout    string `json:"checkout" validate:"omitempty,date"`
	OrderBy     string `json:"order_by" validate:"omitempty,oneof=price -price capacity -capacity spots -spots"`
	PaginatedRequest
}

type CreateRoomRequest struct {
	Type     string           `json:"type" validate:"required"`
	Capacity int              `json:"capacity" validate:"required,gt=0"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
}

// UpdateRoomRequest changes price and/or capacity; absent fields are kept.
type UpdateRoomRequest struct {
	Capacity *int             `json:"capacity" validate:"omitempty,gt=0"`
	Price    *decimal.Decimal `json:"price"`
}
