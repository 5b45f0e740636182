package shared

import (
	"context"
	"time"

	"hotelier/internal/domain/billing"
	"hotelier/internal/domain/catalog"
	"hotelier/internal/domain/guest"
	"hotelier/internal/domain/message"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/domain/user"
	"hotelier/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Rooms() RoomRepository
	Guests() GuestRepository
	Invoices() InvoiceRepository
	Payments() PaymentRepository
	Services() ServiceRepository
	Contracts() ContractRepository
	Messages() MessageRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write-path lookups: snapshots and aggregates the command
// usecases validate against. Inside a transaction they run on the transaction's
// connection, so locking reads hold until commit.
type CommandReads interface {
	// RoomForBooking locks the room row (FOR UPDATE) to serialize competing
	// bookings on the same room.
	RoomForBooking(ctx context.Context, roomID uuid.UUID) (*RoomSnapshot, error)
	RoomByID(ctx context.Context, roomID uuid.UUID) (*RoomSnapshot, error)
	HasOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) (bool, error)
	NextReservationSeq(ctx context.Context, yearMonth string) (int, error)
	NextInvoiceSeq(ctx context.Context, yearMonth string) (int, error)
	// GuestByUserID resolves the guest profile linked to an account; commands
	// fall back to it when the actor's token predates the link.
	GuestByUserID(ctx context.Context, userID uuid.UUID) (*GuestSnapshot, error)
	GuestByID(ctx context.Context, id uuid.UUID) (*GuestSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ServicesTotal(ctx context.Context, reservationID uuid.UUID) (int64, error)
	// InvoiceForPayment locks the invoice row so concurrent payments serialize.
	InvoiceForPayment(ctx context.Context, invoiceID uuid.UUID) (*billing.Invoice, error)
	InvoiceExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error)
	PaymentsTotal(ctx context.Context, invoiceID uuid.UUID) (int64, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	ContractByID(ctx context.Context, id uuid.UUID) (*ContractSnapshot, error)
	MessageByID(ctx context.Context, id uuid.UUID) (*message.Message, error)
	TaxRatePercent(ctx context.Context) (float64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, r *room.Room) error
	UpdateStatus(ctx context.Context, tx db.DBTX, roomID uuid.UUID, status room.Status) error
	CreateType(ctx context.Context, tx db.DBTX, t *room.RoomType) (uuid.UUID, error)
	UpdateType(ctx context.Context, tx db.DBTX, t *room.RoomType) error
}

type GuestRepository interface {
	Create(ctx context.Context, tx db.DBTX, g *guest.Guest) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, g *guest.Guest) error
	// UpsertByDocument reuses an existing guest with the same document,
	// overwriting its contact fields with the incoming data.
	UpsertByDocument(ctx context.Context, tx db.DBTX, g *guest.Guest) (uuid.UUID, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, inv *billing.Invoice) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status billing.InvoiceStatus) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *billing.Payment) (uuid.UUID, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *catalog.Service) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, s *catalog.Service) error
}

type ContractRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *catalog.Contract) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status catalog.ContractStatus) error
}

type MessageRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *message.Message) (uuid.UUID, error)
	SaveReply(ctx context.Context, tx db.DBTX, m *message.Message) error
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status message.Status) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
