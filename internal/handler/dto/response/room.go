package response

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID                uuid.UUID `json:"id"`
	Number            string    `json:"number"`
	Floor             int       `json:"floor"`
	Status            string    `json:"status"`
	IsActive          bool      `json:"isActive"`
	RoomTypeID        uuid.UUID `json:"roomTypeId"`
	RoomTypeName      string    `json:"roomTypeName"`
	NightlyPriceCents int64     `json:"nightlyPriceCents"`
	Capacity          int       `json:"capacity"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	items := make([]*RoomResponse, len(rms))
	for i, rm := range rms {
		items[i] = FromRoomView(rm)
	}
	return items
}
