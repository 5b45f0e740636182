package queries

import (
	"context"
	"time"

	"hotelier/internal/pkg/clock"
)

type DashboardQueries interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type DashboardReadStore interface {
	Summarize(ctx context.Context, today time.Time) (*DashboardSummary, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
	clock     clock.Clock
}

func NewDashboardQueries(readStore DashboardReadStore, clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore, clock: clk}
}

func (q *dashboardQueriesImpl) Summary(ctx context.Context) (*DashboardSummary, error) {
	now := q.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return q.readStore.Summarize(ctx, today)
}
