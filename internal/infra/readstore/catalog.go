package readstore

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const serviceSelect = `
	SELECT id, name, category, price_cents, is_active, created_at, updated_at
	FROM services`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	var v queries.ServiceView
	err := r.db.QueryRow(ctx, serviceSelect+" WHERE id = $1", id).Scan(
		&v.ID, &v.Name, &v.Category, &v.PriceCents, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &v, nil
}

func (r *ServiceReadStore) Find(ctx context.Context, activeOnly bool) ([]*queries.ServiceView, error) {
	query := serviceSelect + " WHERE (NOT $1 OR is_active) ORDER BY category, name"

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	views := []*queries.ServiceView{}
	for rows.Next() {
		var v queries.ServiceView
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.PriceCents, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}
	return views, nil
}

type ContractReadStore struct {
	db db.DBTX
}

func NewContractReadStore(dbtx db.DBTX) *ContractReadStore {
	return &ContractReadStore{db: dbtx}
}

const contractSelect = `
	SELECT c.id, c.guest_id, g.first_name || ' ' || g.last_name, c.service_date, c.status,
	       c.created_at, c.updated_at
	FROM service_contracts c
	JOIN guests g ON g.id = c.guest_id`

func (r *ContractReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ContractView, error) {
	rows, err := r.db.Query(ctx, contractSelect+" WHERE c.id = $1", id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find contract by ID", err)
	}
	defer rows.Close()

	views, err := r.scanContracts(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.NotFoundErr("service contract not found")
	}
	return views[0], nil
}

func (r *ContractReadStore) Find(ctx context.Context, status string, limit int32) ([]*queries.ContractView, error) {
	query := contractSelect + `
	WHERE ($1 = '' OR c.status = $1)
	ORDER BY c.service_date DESC
	LIMIT $2`

	rows, err := r.db.Query(ctx, query, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contracts", err)
	}
	defer rows.Close()

	return r.scanContracts(ctx, rows)
}

func (r *ContractReadStore) FindByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.ContractView, error) {
	query := contractSelect + `
	WHERE c.guest_id = $1
	ORDER BY c.service_date DESC
	LIMIT $2`

	rows, err := r.db.Query(ctx, query, guestID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guest contracts", err)
	}
	defer rows.Close()

	return r.scanContracts(ctx, rows)
}

func (r *ContractReadStore) scanContracts(ctx context.Context, rows pgx.Rows) ([]*queries.ContractView, error) {
	views := []*queries.ContractView{}
	for rows.Next() {
		var v queries.ContractView
		if err := rows.Scan(
			&v.ID, &v.GuestID, &v.GuestName, &v.ServiceDate, &v.Status,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contract row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read contract rows", err)
	}
	rows.Close()

	for _, v := range views {
		lines, err := r.findLines(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		v.Lines = lines
		for _, line := range lines {
			v.TotalCents += line.UnitPriceCents * int64(line.Quantity)
		}
	}
	return views, nil
}

func (r *ContractReadStore) findLines(ctx context.Context, contractID uuid.UUID) ([]queries.ContractLine, error) {
	const query = `
		SELECT l.id, l.service_id, s.name, l.quantity, l.unit_price_cents
		FROM service_contract_lines l
		JOIN services s ON s.id = l.service_id
		WHERE l.contract_id = $1
		ORDER BY l.created_at`

	rows, err := r.db.Query(ctx, query, contractID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contract lines", err)
	}
	defer rows.Close()

	lines := []queries.ContractLine{}
	for rows.Next() {
		var l queries.ContractLine
		if err := rows.Scan(&l.ID, &l.ServiceID, &l.ServiceName, &l.Quantity, &l.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contract line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read contract lines", err)
	}
	return lines, nil
}
