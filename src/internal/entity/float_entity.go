package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	FloatActionTopup  = "topup"
	FloatActionDeduct = "deduct"
)

// Float request states. Approved and rejected are terminal.
const (
	FloatRequestPending  = "pending"
	FloatRequestApproved = "approved"
	FloatRequestRejected = "rejected"
)

// FloatLog is the append-only audit row written for every successful
// balance mutation. Names and branch are snapshots taken at mutation time.
type FloatLog struct {
	ID            int64           `json:"id" db:"id"`
	AdminID       int64           `json:"admin_id" db:"admin_id"`
	AdminName     string          `json:"admin_name" db:"admin_name"`
	AgentID       int64           `json:"agent_id" db:"agent_id"`
	AgentName     string          `json:"agent_name" db:"agent_name"`
	BranchID      *int64          `json:"branch_id" db:"branch_id"`
	BranchName    *string         `json:"branch_name" db:"branch_name"`
	Action        string          `json:"action" db:"action"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before" db:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after" db:"balance_after"`
	Note          string          `json:"note" db:"note"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

type FloatRequest struct {
	ID          int64           `json:"id" db:"id"`
	AgentID     int64           `json:"agent_id" db:"agent_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Reason      string          `json:"reason" db:"reason"`
	Status      string          `json:"status" db:"status"`
	ManagerID   *int64          `json:"manager_id" db:"manager_id"`
	RequestedAt time.Time       `json:"requested_at" db:"requested_at"`
	ProcessedAt *time.Time      `json:"processed_at" db:"processed_at"`
}

// FloatRequestRow joins the requesting agent's identity for manager review.
type FloatRequestRow struct {
	FloatRequest
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Username  string `json:"username" db:"username"`
}

// FloatAgentRow is the admin float-desk projection per agent.
type FloatAgentRow struct {
	ID             int64           `json:"id" db:"id"`
	FirstName      string          `json:"first_name" db:"first_name"`
	LastName       string          `json:"last_name" db:"last_name"`
	Username       string          `json:"username" db:"username"`
	Phone          string          `json:"phone" db:"phone"`
	Role           string          `json:"role" db:"role"`
	BranchID       *int64          `json:"branch_id" db:"branch_id"`
	BranchName     *string         `json:"branch_name" db:"branch_name"`
	BranchLocation *string         `json:"branch_location" db:"branch_location"`
	Balance        decimal.Decimal `json:"balance" db:"balance"`
	TodayVolume    decimal.Decimal `json:"today_volume" db:"today_volume"`
}

// FloatStats summarizes the float desk: totals plus low and critical
// balance counts (thresholds 2000 and 1000).
type FloatStats struct {
	TotalFloat decimal.Decimal `json:"totalFloat" db:"total_float"`
	Active     int64           `json:"active" db:"active"`
	Low        int64           `json:"low" db:"low"`
	Critical   int64           `json:"critical" db:"critical"`
}

// FloatLogRow joins the acting admin's current name onto the audit row.
type FloatLogRow struct {
	FloatLog
	AdminFirst *string `json:"admin_first" db:"admin_first"`
	AdminLast  *string `json:"admin_last" db:"admin_last"`
}
