package readstore

import (
	"context"
	"time"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/queries"
)

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(dbtx db.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: dbtx}
}

// Summarize aggregates the front-desk figures for one calendar day. Counts
// come from a handful of small queries rather than one wide join so each
// stays index-friendly.
func (r *DashboardReadStore) Summarize(ctx context.Context, today time.Time) (*queries.DashboardSummary, error) {
	summary := &queries.DashboardSummary{
		Date:             today,
		RoomStatusCounts: map[string]int{},
	}
	tomorrow := today.AddDate(0, 0, 1)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	const movements = `
		SELECT
			COUNT(*) FILTER (WHERE check_in = $1 AND status = 'confirmed'),
			COUNT(*) FILTER (WHERE check_out = $1 AND status = 'checked_in')
		FROM reservations`
	if err := r.db.QueryRow(ctx, movements, today).Scan(&summary.ArrivalsToday, &summary.DeparturesToday); err != nil {
		return nil, infra.WrapRepoErr("failed to count reservation movements", err)
	}

	const roomCounts = `
		SELECT status, COUNT(*)
		FROM rooms
		WHERE is_active
		GROUP BY status`
	rows, err := r.db.Query(ctx, roomCounts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count rooms", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room count", err)
		}
		summary.RoomStatusCounts[status] = count
		summary.TotalRooms += count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room counts", err)
	}
	summary.OccupiedRooms = summary.RoomStatusCounts["occupied"]
	summary.AvailableRooms = summary.RoomStatusCounts["available"]
	if summary.TotalRooms > 0 {
		summary.OccupancyPercent = float64(summary.OccupiedRooms) / float64(summary.TotalRooms) * 100
	}

	const openWork = `
		SELECT
			(SELECT COUNT(*) FROM messages WHERE status = 'pending'),
			(SELECT COUNT(*) FROM invoices WHERE status = 'pending')`
	if err := r.db.QueryRow(ctx, openWork).Scan(&summary.OpenMessages, &summary.PendingInvoices); err != nil {
		return nil, infra.WrapRepoErr("failed to count open work", err)
	}

	const revenue = `
		SELECT
			COALESCE(SUM(amount_cents) FILTER (WHERE received_at >= $1 AND received_at < $2), 0),
			COALESCE(SUM(amount_cents) FILTER (WHERE received_at >= $3), 0)
		FROM payments`
	if err := r.db.QueryRow(ctx, revenue, today, tomorrow, monthStart).Scan(&summary.RevenueTodayCents, &summary.RevenueMonthCents); err != nil {
		return nil, infra.WrapRepoErr("failed to sum revenue", err)
	}

	const arrivals = reservationListSelect + `
	WHERE r.status = 'confirmed' AND r.check_in >= $1 AND r.check_in < $2
	ORDER BY r.check_in, r.created_at
	LIMIT 10`
	arrivalRows, err := r.db.Query(ctx, arrivals, today, today.AddDate(0, 0, 7))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming arrivals", err)
	}
	defer arrivalRows.Close()
	items, err := scanReservationListItems(arrivalRows)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		summary.UpcomingArrivals = append(summary.UpcomingArrivals, *it)
	}

	return summary, nil
}
