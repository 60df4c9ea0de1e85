package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type RoomType int

const (
	RoomTypeEconomic RoomType = iota + 1
	RoomTypeStandard
	RoomTypePremium
	RoomTypeLuxury
)

var roomTypeNames = map[RoomType]string{
	RoomTypeEconomic: "ECONOMIC",
	RoomTypeStandard: "STANDARD",
	RoomTypePremium:  "PREMIUM",
	RoomTypeLuxury:   "LUXURY",
}

func (t RoomType) String() string {
	if name, ok := roomTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("RoomType(%d)", int(t))
}

// ParseRoomType accepts the type name in any case.
func ParseRoomType(s string) (RoomType, error) {
	for t, name := range roomTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown room type %q", s)
}

type Room struct {
	BaseNoDelete
	Type     RoomType        `db:"room_type"`
	Capacity int             `db:"capacity"`
	Price    decimal.Decimal `db:"price"`
}
