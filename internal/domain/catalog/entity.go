package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceName = errors.New("service name is required")
	ErrInvalidPrice       = errors.New("service price cannot be negative")
	ErrServiceInactive    = errors.New("service is inactive")
)

// Service is a catalog item contractable on its own or attached to a stay.
type Service struct {
	id         uuid.UUID
	name       string
	category   string
	priceCents int64
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewService(name, category string, priceCents int64) (*Service, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidServiceName
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	return &Service{
		id:         uuid.New(),
		name:       strings.TrimSpace(name),
		category:   category,
		priceCents: priceCents,
		isActive:   true,
	}, nil
}

func ReconstructService(
	id uuid.UUID,
	name, category string,
	priceCents int64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:         id,
		name:       name,
		category:   category,
		priceCents: priceCents,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) Category() string     { return s.category }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) IsActive() bool       { return s.isActive }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
