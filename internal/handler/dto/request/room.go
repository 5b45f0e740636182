package request

import (
	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number     string    `json:"number" binding:"required"`
	Floor      int       `json:"floor" binding:"required"`
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		Number:     r.Number,
		Floor:      r.Floor,
		RoomTypeID: r.RoomTypeID,
	}
}

type UpdateRoomRequest struct {
	Number     *string    `json:"number,omitempty"`
	Floor      *int       `json:"floor,omitempty"`
	RoomTypeID *uuid.UUID `json:"room_type_id,omitempty"`
	IsActive   *bool      `json:"is_active,omitempty"`
}

func (r UpdateRoomRequest) ToInput() commands.UpdateRoomInput {
	return commands.UpdateRoomInput{
		Number:     r.Number,
		Floor:      r.Floor,
		RoomTypeID: r.RoomTypeID,
		IsActive:   r.IsActive,
	}
}

type RoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RoomTypeRequest struct {
	Name              string   `json:"name" binding:"required"`
	NightlyPriceCents int64    `json:"nightly_price_cents" binding:"required,min=0"`
	Capacity          int      `json:"capacity" binding:"required,min=1"`
	BedConfig         string   `json:"bed_config" binding:"required"`
	Amenities         []string `json:"amenities,omitempty"`
}

func (r RoomTypeRequest) ToInput() commands.RoomTypeInput {
	return commands.RoomTypeInput{
		Name:              r.Name,
		NightlyPriceCents: r.NightlyPriceCents,
		Capacity:          r.Capacity,
		BedConfig:         r.BedConfig,
		Amenities:         r.Amenities,
	}
}
