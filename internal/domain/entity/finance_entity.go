package entity

import (
	"strconv"
)

// Money is an amount in cents. It marshals to JSON as a decimal number of
// whole units (4550 -> 45.5) so totals stay exact.
type Money int64

// Float returns the amount in whole units.
func (m Money) Float() float64 { return float64(m) / 100 }

// String formats the amount with two decimals, e.g. "156.75".
func (m Money) String() string {
	return strconv.FormatFloat(m.Float(), 'f', 2, 64)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Float(), 'f', -1, 64)), nil
}

// Account is one row of the dashboard account table.
type Account struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance int    `json:"balance"`
	Status  string `json:"status"`
}

// DashboardSnapshot is the aggregate shown on the dashboard page.
type DashboardSnapshot struct {
	TotalBalance   int       `json:"total_balance"`
	Expenses       int       `json:"expenses"`
	Investments    int       `json:"investments"`
	GoalsProgress  int       `json:"goals_progress"`
	FinancialScore int       `json:"financial_score"`
	Accounts       []Account `json:"accounts"`
}

// Expense is a single ledger entry.
type Expense struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
	Status      string `json:"status"`
}

// CategoryTotal is the summed amount of all ledger entries in one category.
type CategoryTotal struct {
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
	Count    int    `json:"count"`
}
