package repository

import (
	"context"

	"hotelier/internal/domain/catalog"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceRepository struct{}

func NewServiceRepository() shared.ServiceRepository {
	return &ServiceRepository{}
}

func (r *ServiceRepository) Create(ctx context.Context, tx db.DBTX, s *catalog.Service) (uuid.UUID, error) {
	const query = `
		INSERT INTO services (name, category, price_cents, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, s.Name(), s.Category(), s.PriceCents(), s.IsActive()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx db.DBTX, s *catalog.Service) error {
	const query = `
		UPDATE services
		SET name = $2, category = $3, price_cents = $4, is_active = $5, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, s.ID(), s.Name(), s.Category(), s.PriceCents(), s.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("service not found")
	}
	return nil
}

type ContractRepository struct{}

func NewContractRepository() shared.ContractRepository {
	return &ContractRepository{}
}

func (r *ContractRepository) Create(ctx context.Context, tx db.DBTX, c *catalog.Contract) (uuid.UUID, error) {
	const insertContract = `
		INSERT INTO service_contracts (guest_id, service_date, status)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertContract, c.GuestID(), c.ServiceDate(), c.Status().String()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service contract", err)
	}

	const insertLine = `
		INSERT INTO service_contract_lines (contract_id, service_id, quantity, unit_price_cents)
		VALUES ($1, $2, $3, $4)`

	for _, line := range c.Lines() {
		if _, err := tx.Exec(ctx, insertLine, id, line.ServiceID(), line.Quantity(), line.UnitPriceCents()); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create contract line", err)
		}
	}

	return id, nil
}

func (r *ContractRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status catalog.ContractStatus) error {
	const query = `
		UPDATE service_contracts
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update contract status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("service contract not found")
	}
	return nil
}
