package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ReservationView struct {
	ID              uuid.UUID            `json:"id"`
	Code            string               `json:"code"`
	GuestID         uuid.UUID            `json:"guest_id"`
	GuestName       string               `json:"guest_name"`
	GuestEmail      string               `json:"guest_email"`
	RoomID          uuid.UUID            `json:"room_id"`
	RoomNumber      string               `json:"room_number"`
	RoomTypeName    string               `json:"room_type_name"`
	CheckIn         time.Time            `json:"check_in"`
	CheckOut        time.Time            `json:"check_out"`
	Nights          int                  `json:"nights"`
	Headcount       int                  `json:"headcount"`
	Status          string               `json:"status"`
	StayPriceCents  int64                `json:"stay_price_cents"`
	ServicesCents   int64                `json:"services_cents"`
	TotalCents      int64                `json:"total_cents"`
	Services        []ReservationService `json:"services"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type ReservationService struct {
	ID             uuid.UUID `json:"id"`
	ServiceID      uuid.UUID `json:"service_id"`
	ServiceName    string    `json:"service_name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	TotalCents     int64     `json:"total_cents"`
}

type ReservationListItem struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	GuestName      string    `json:"guest_name"`
	RoomNumber     string    `json:"room_number"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	Status         string    `json:"status"`
	StayPriceCents int64     `json:"stay_price_cents"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReservationFilter narrows reservation listings; zero values mean "any".
type ReservationFilter struct {
	Status  string
	RoomID  *uuid.UUID
	GuestID *uuid.UUID
	From    *time.Time
	To      *time.Time
}

type RoomView struct {
	ID                uuid.UUID `json:"id"`
	Number            string    `json:"number"`
	Floor             int       `json:"floor"`
	Status            string    `json:"status"`
	IsActive          bool      `json:"is_active"`
	RoomTypeID        uuid.UUID `json:"room_type_id"`
	RoomTypeName      string    `json:"room_type_name"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	Capacity          int       `json:"capacity"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type RoomTypeView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	Capacity          int       `json:"capacity"`
	BedConfig         string    `json:"bed_config"`
	Amenities         []string  `json:"amenities"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type GuestView struct {
	ID             uuid.UUID  `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	DocumentKind   string     `json:"document_kind"`
	DocumentNumber string     `json:"document_number"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type InvoiceView struct {
	ID              uuid.UUID     `json:"id"`
	Number          string        `json:"number"`
	ReservationID   uuid.UUID     `json:"reservation_id"`
	ReservationCode string        `json:"reservation_code"`
	GuestName       string        `json:"guest_name"`
	SubtotalCents   int64         `json:"subtotal_cents"`
	TaxCents        int64         `json:"tax_cents"`
	DiscountCents   int64         `json:"discount_cents"`
	TotalCents      int64         `json:"total_cents"`
	PaidCents       int64         `json:"paid_cents"`
	BalanceCents    int64         `json:"balance_cents"`
	Status          string        `json:"status"`
	IssuedAt        time.Time     `json:"issued_at"`
	Payments        []PaymentView `json:"payments"`
}

type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference,omitempty"`
	ReceivedAt  time.Time `json:"received_at"`
}

type ServiceView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	PriceCents int64     `json:"price_cents"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ContractView struct {
	ID          uuid.UUID      `json:"id"`
	GuestID     uuid.UUID      `json:"guest_id"`
	GuestName   string         `json:"guest_name"`
	ServiceDate time.Time      `json:"service_date"`
	Status      string         `json:"status"`
	TotalCents  int64          `json:"total_cents"`
	Lines       []ContractLine `json:"lines"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type ContractLine struct {
	ID             uuid.UUID `json:"id"`
	ServiceID      uuid.UUID `json:"service_id"`
	ServiceName    string    `json:"service_name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type MessageView struct {
	ID        uuid.UUID  `json:"id"`
	GuestID   uuid.UUID  `json:"guest_id"`
	GuestName string     `json:"guest_name"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Status    string     `json:"status"`
	Reply     *string    `json:"reply,omitempty"`
	RepliedBy *uuid.UUID `json:"replied_by,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	GuestID     *uuid.UUID `json:"guest_id,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type DashboardSummary struct {
	Date              time.Time             `json:"date"`
	ArrivalsToday     int                   `json:"arrivals_today"`
	DeparturesToday   int                   `json:"departures_today"`
	OccupiedRooms     int                   `json:"occupied_rooms"`
	AvailableRooms    int                   `json:"available_rooms"`
	TotalRooms        int                   `json:"total_rooms"`
	OccupancyPercent  float64               `json:"occupancy_percent"`
	OpenMessages      int                   `json:"open_messages"`
	PendingInvoices   int                   `json:"pending_invoices"`
	RevenueTodayCents int64                 `json:"revenue_today_cents"`
	RevenueMonthCents int64                 `json:"revenue_month_cents"`
	RoomStatusCounts  map[string]int        `json:"room_status_counts"`
	UpcomingArrivals  []ReservationListItem `json:"upcoming_arrivals"`
}
