package repository

import (
	"context"

	"github.com/oksasatya/gryffintwin/internal/domain/entity"
)

// FinanceRepository serves the dashboard snapshot and the expense ledger.
// Implementations must return data that callers may not mutate in place.
type FinanceRepository interface {
	Dashboard(ctx context.Context) (entity.DashboardSnapshot, error)
	Expenses(ctx context.Context) ([]entity.Expense, error)
}
