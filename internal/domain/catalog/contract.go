package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidContractStatus     = errors.New("invalid contract status")
	ErrInvalidContractTransition = errors.New("invalid contract status transition")
	ErrEmptyContract             = errors.New("contract requires at least one line")
	ErrInvalidQuantity           = errors.New("line quantity must be positive")
)

type ContractStatus string

const (
	ContractPending   ContractStatus = "pending"
	ContractConfirmed ContractStatus = "confirmed"
	ContractCompleted ContractStatus = "completed"
	ContractCancelled ContractStatus = "cancelled"
)

func (s ContractStatus) String() string {
	return string(s)
}

func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractPending, ContractConfirmed, ContractCompleted, ContractCancelled:
		return true
	default:
		return false
	}
}

func NewContractStatus(s string) (ContractStatus, error) {
	status := ContractStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidContractStatus
	}
	return status, nil
}

var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractPending:   {ContractConfirmed, ContractCancelled},
	ContractConfirmed: {ContractCompleted, ContractCancelled},
}

func (s ContractStatus) CanTransition(to ContractStatus) bool {
	for _, next := range contractTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ContractLine captures the unit price at contracting time.
type ContractLine struct {
	id             uuid.UUID
	serviceID      uuid.UUID
	quantity       int
	unitPriceCents int64
}

func NewContractLine(serviceID uuid.UUID, quantity int, unitPriceCents int64) (ContractLine, error) {
	if quantity <= 0 {
		return ContractLine{}, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return ContractLine{}, ErrInvalidPrice
	}
	return ContractLine{
		id:             uuid.New(),
		serviceID:      serviceID,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
	}, nil
}

func ReconstructContractLine(id, serviceID uuid.UUID, quantity int, unitPriceCents int64) ContractLine {
	return ContractLine{id: id, serviceID: serviceID, quantity: quantity, unitPriceCents: unitPriceCents}
}

func (l ContractLine) ID() uuid.UUID         { return l.id }
func (l ContractLine) ServiceID() uuid.UUID  { return l.serviceID }
func (l ContractLine) Quantity() int         { return l.quantity }
func (l ContractLine) UnitPriceCents() int64 { return l.unitPriceCents }

func (l ContractLine) TotalCents() int64 {
	return l.unitPriceCents * int64(l.quantity)
}

// Contract is a standalone (no-room) purchase of catalog services by a guest.
type Contract struct {
	id          uuid.UUID
	guestID     uuid.UUID
	serviceDate time.Time
	lines       []ContractLine
	status      ContractStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func NewContract(guestID uuid.UUID, serviceDate time.Time, lines []ContractLine) (*Contract, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyContract
	}
	return &Contract{
		id:          uuid.New(),
		guestID:     guestID,
		serviceDate: serviceDate,
		lines:       lines,
		status:      ContractPending,
	}, nil
}

func ReconstructContract(
	id, guestID uuid.UUID,
	serviceDate time.Time,
	lines []ContractLine,
	status ContractStatus,
	createdAt, updatedAt time.Time,
) *Contract {
	return &Contract{
		id:          id,
		guestID:     guestID,
		serviceDate: serviceDate,
		lines:       lines,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Contract) ID() uuid.UUID          { return c.id }
func (c *Contract) GuestID() uuid.UUID     { return c.guestID }
func (c *Contract) ServiceDate() time.Time { return c.serviceDate }
func (c *Contract) Lines() []ContractLine  { return c.lines }
func (c *Contract) Status() ContractStatus { return c.status }
func (c *Contract) CreatedAt() time.Time   { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time   { return c.updatedAt }

func (c *Contract) TotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.TotalCents()
	}
	return total
}

func (c *Contract) Transition(to ContractStatus) error {
	if !c.status.CanTransition(to) {
		return ErrInvalidContractTransition
	}
	c.status = to
	return nil
}
