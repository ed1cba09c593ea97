package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payout struct {
	ID         int64           `json:"id" db:"id"`
	EmployeeID int64           `json:"employee_id" db:"employee_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	PayoutType string          `json:"payout_type" db:"payout_type"`
	Note       *string         `json:"note" db:"note"`
	PaidBy     int64           `json:"paid_by" db:"paid_by"`
	Method     string          `json:"method" db:"method"`
	Status     string          `json:"status" db:"status"`
	PaidAt     time.Time       `json:"paid_at" db:"paid_at"`
}

// CommissionRule is one row of the branch/service rate table.
type CommissionRule struct {
	ID          int64           `json:"id" db:"id"`
	BranchID    int64           `json:"branch_id" db:"branch_id"`
	ServiceType string          `json:"service_type" db:"service_type"`
	MinAmount   decimal.Decimal `json:"min_amount" db:"min_amount"`
	RatePercent decimal.Decimal `json:"rate_percent" db:"rate_percent"`
}

// AgentEarnings carries the commission aggregate for one agent over a
// range. Earned is summed per row (amount * rate / 100) so mixed service
// rates stay exact; rounding happens only at display.
type AgentEarnings struct {
	ID         int64           `json:"id" db:"id"`
	FirstName  string          `json:"first_name" db:"first_name"`
	LastName   string          `json:"last_name" db:"last_name"`
	Username   string          `json:"username" db:"username"`
	Role       string          `json:"role" db:"role"`
	BranchID   *int64          `json:"branch_id" db:"branch_id"`
	BranchName *string         `json:"branch_name" db:"branch_name"`
	Earned     decimal.Decimal `json:"earned" db:"earned"`
	TotalSales decimal.Decimal `json:"total_sales" db:"total_sales"`
}

// PaidAggregate is the settled payout sum for one agent over a range.
type PaidAggregate struct {
	EmployeeID int64           `db:"employee_id"`
	Paid       decimal.Decimal `db:"paid"`
}
