package application

import (
	"context"

	"github.com/oksasatya/gryffintwin/internal/domain/entity"
	repo "github.com/oksasatya/gryffintwin/internal/domain/repository"
)

type FinanceService struct {
	Repo   repo.FinanceRepository
	Budget entity.Money
}

func NewFinanceService(repo repo.FinanceRepository, budget entity.Money) *FinanceService {
	return &FinanceService{Repo: repo, Budget: budget}
}

// ExpenseReport is the ledger together with the figures derived from it.
type ExpenseReport struct {
	Expenses         []entity.Expense
	Total            entity.Money
	Budget           entity.Money
	RemainingBudget  entity.Money
	BudgetPercentage int
}

func (s *FinanceService) Dashboard(ctx context.Context) (entity.DashboardSnapshot, error) {
	return s.Repo.Dashboard(ctx)
}

func (s *FinanceService) Expenses(ctx context.Context) (ExpenseReport, error) {
	ex, err := s.Repo.Expenses(ctx)
	if err != nil {
		return ExpenseReport{}, err
	}
	total := TotalExpenses(ex)
	r := ExpenseReport{
		Expenses:        ex,
		Total:           total,
		Budget:          s.Budget,
		RemainingBudget: s.Budget - total,
	}
	if s.Budget > 0 {
		r.BudgetPercentage = int(total * 100 / s.Budget)
	}
	return r, nil
}

// CategoryBreakdown sums the ledger per category, in order of first appearance.
func (s *FinanceService) CategoryBreakdown(ctx context.Context) ([]entity.CategoryTotal, error) {
	ex, err := s.Repo.Expenses(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int)
	var out []entity.CategoryTotal
	for _, e := range ex {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, entity.CategoryTotal{Category: e.Category})
		}
		out[i].Amount += e.Amount
		out[i].Count++
	}
	return out, nil
}

// TotalExpenses is the exact sum of all ledger amounts.
func TotalExpenses(ex []entity.Expense) entity.Money {
	var total entity.Money
	for _, e := range ex {
		total += e.Amount
	}
	return total
}
