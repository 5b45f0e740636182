package response

import (
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID             uuid.UUID                    `json:"id"`
	Code           string                       `json:"code"`
	GuestID        uuid.UUID                    `json:"guestId"`
	GuestName      string                       `json:"guestName"`
	GuestEmail     string                       `json:"guestEmail"`
	RoomID         uuid.UUID                    `json:"roomId"`
	RoomNumber     string                       `json:"roomNumber"`
	RoomTypeName   string                       `json:"roomTypeName"`
	CheckIn        time.Time                    `json:"checkIn"`
	CheckOut       time.Time                    `json:"checkOut"`
	Nights         int                          `json:"nights"`
	Headcount      int                          `json:"headcount"`
	Status         string                       `json:"status"`
	StayPriceCents int64                        `json:"stayPriceCents"`
	ServicesCents  int64                        `json:"servicesCents"`
	TotalCents     int64                        `json:"totalCents"`
	Services       []ReservationServiceResponse `json:"services"`
	CreatedAt      time.Time                    `json:"createdAt"`
	UpdatedAt      time.Time                    `json:"updatedAt"`
}

type ReservationServiceResponse struct {
	ID             uuid.UUID `json:"id"`
	ServiceID      uuid.UUID `json:"serviceId"`
	ServiceName    string    `json:"serviceName"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	TotalCents     int64     `json:"totalCents"`
}

type ReservationListResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	GuestName      string    `json:"guestName"`
	RoomNumber     string    `json:"roomNumber"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	Status         string    `json:"status"`
	StayPriceCents int64     `json:"stayPriceCents"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ReservationPageResponse struct {
	Items      []*ReservationListResponse `json:"items"`
	NextCursor string                     `json:"nextCursor,omitempty"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	var resp ReservationListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationListItems(rms []*queries.ReservationListItem) []*ReservationListResponse {
	items := make([]*ReservationListResponse, len(rms))
	for i, rm := range rms {
		items[i] = FromReservationListItem(rm)
	}
	return items
}
