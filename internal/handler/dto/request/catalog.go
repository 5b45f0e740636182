package request

import (
	"time"

	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type ServiceRequest struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required,min=0"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

func (r ServiceRequest) ToInput() commands.ServiceInput {
	return commands.ServiceInput{
		Name:       r.Name,
		Category:   r.Category,
		PriceCents: r.PriceCents,
		IsActive:   r.IsActive,
	}
}

type ContractLinePayload struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

type CreateContractRequest struct {
	ServiceDate time.Time             `json:"service_date" binding:"required"`
	Lines       []ContractLinePayload `json:"lines" binding:"required,min=1"`
}

func (r CreateContractRequest) ToInput() commands.CreateContractInput {
	lines := make([]commands.ContractLineInput, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = commands.ContractLineInput{
			ServiceID: l.ServiceID,
			Quantity:  l.Quantity,
		}
	}
	return commands.CreateContractInput{
		ServiceDate: r.ServiceDate,
		Lines:       lines,
	}
}
