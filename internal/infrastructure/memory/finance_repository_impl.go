package memory

import (
	"context"

	"github.com/oksasatya/gryffintwin/internal/domain/entity"
	"github.com/oksasatya/gryffintwin/internal/domain/repository"
)

var demoDashboard = entity.DashboardSnapshot{
	TotalBalance:   24580,
	Expenses:       3240,
	Investments:    12450,
	GoalsProgress:  68,
	FinancialScore: 850,
	Accounts: []entity.Account{
		{Name: "Checking Account", Type: "Checking", Balance: 5230, Status: "Active"},
		{Name: "Savings Account", Type: "Savings", Balance: 12350, Status: "Active"},
		{Name: "Money Market", Type: "Money Market", Balance: 4800, Status: "Active"},
		{Name: "Business Account", Type: "Business", Balance: 2200, Status: "Active"},
	},
}

var demoExpenses = []entity.Expense{
	{Date: "Dec 05, 2025", Category: "Food", Description: "Lunch at Restaurant", Amount: 4550, Status: "Completed"},
	{Date: "Dec 04, 2025", Category: "Transport", Description: "Uber Trip", Amount: 3200, Status: "Completed"},
	{Date: "Dec 03, 2025", Category: "Entertainment", Description: "Movie Tickets", Amount: 2800, Status: "Completed"},
	{Date: "Dec 02, 2025", Category: "Shopping", Description: "Grocery Shopping", Amount: 15675, Status: "Completed"},
	{Date: "Dec 01, 2025", Category: "Health", Description: "Pharmacy Purchase", Amount: 6520, Status: "Completed"},
	{Date: "Nov 30, 2025", Category: "Education", Description: "Online Course", Amount: 9999, Status: "Pending"},
}

// FinanceRepository serves constant mock financial data. Every call returns
// fresh copies so callers cannot alter the shared tables.
type FinanceRepository struct{}

func NewFinanceRepository() *FinanceRepository { return &FinanceRepository{} }

func (r *FinanceRepository) Dashboard(_ context.Context) (entity.DashboardSnapshot, error) {
	d := demoDashboard
	d.Accounts = append([]entity.Account(nil), demoDashboard.Accounts...)
	return d, nil
}

func (r *FinanceRepository) Expenses(_ context.Context) ([]entity.Expense, error) {
	return append([]entity.Expense(nil), demoExpenses...), nil
}

var _ repository.FinanceRepository = (*FinanceRepository)(nil)
