package room

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoomType is read-mostly reference data: pricing and capacity per room category.
type RoomType struct {
	id                uuid.UUID
	name              string
	nightlyPriceCents int64
	capacity          int
	bedConfig         string
	amenities         []string
	isActive          bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRoomType(name string, nightlyPriceCents int64, capacity int, bedConfig string, amenities []string) (*RoomType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidRoomNumber
	}
	if nightlyPriceCents < 0 {
		return nil, ErrInvalidPrice
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &RoomType{
		id:                uuid.New(),
		name:              name,
		nightlyPriceCents: nightlyPriceCents,
		capacity:          capacity,
		bedConfig:         bedConfig,
		amenities:         amenities,
		isActive:          true,
	}, nil
}

func ReconstructRoomType(
	id uuid.UUID,
	name string,
	nightlyPriceCents int64,
	capacity int,
	bedConfig string,
	amenities []string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:                id,
		name:              name,
		nightlyPriceCents: nightlyPriceCents,
		capacity:          capacity,
		bedConfig:         bedConfig,
		amenities:         amenities,
		isActive:          isActive,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (t *RoomType) ID() uuid.UUID            { return t.id }
func (t *RoomType) Name() string             { return t.name }
func (t *RoomType) NightlyPriceCents() int64 { return t.nightlyPriceCents }
func (t *RoomType) Capacity() int            { return t.capacity }
func (t *RoomType) BedConfig() string        { return t.bedConfig }
func (t *RoomType) Amenities() []string      { return t.amenities }
func (t *RoomType) IsActive() bool           { return t.isActive }
func (t *RoomType) CreatedAt() time.Time     { return t.createdAt }
func (t *RoomType) UpdatedAt() time.Time     { return t.updatedAt }

type Room struct {
	id         uuid.UUID
	number     string
	floor      int
	roomTypeID uuid.UUID
	status     Status
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRoom(number string, floor int, roomTypeID uuid.UUID) (*Room, error) {
	if strings.TrimSpace(number) == "" {
		return nil, ErrInvalidRoomNumber
	}
	return &Room{
		id:         uuid.New(),
		number:     strings.TrimSpace(number),
		floor:      floor,
		roomTypeID: roomTypeID,
		status:     StatusAvailable,
		isActive:   true,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	floor int,
	roomTypeID uuid.UUID,
	status Status,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:         id,
		number:     number,
		floor:      floor,
		roomTypeID: roomTypeID,
		status:     status,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) Number() string        { return r.number }
func (r *Room) Floor() int            { return r.floor }
func (r *Room) RoomTypeID() uuid.UUID { return r.roomTypeID }
func (r *Room) Status() Status        { return r.status }
func (r *Room) IsActive() bool        { return r.isActive }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Room) IsBookable() bool {
	return r.isActive && r.status != StatusMaintenance
}
