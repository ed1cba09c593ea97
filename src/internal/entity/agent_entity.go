package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Agent struct {
	ID        int64      `json:"id" db:"id"`
	FirstName string     `json:"first_name" db:"first_name"`
	LastName  string     `json:"last_name" db:"last_name"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	Phone     string     `json:"phone" db:"phone"`
	Role      string     `json:"role" db:"role"`
	Password  string     `json:"-" db:"password"`
	BranchID  *int64     `json:"branch_id" db:"branch_id"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

func (a *Agent) FullName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name == "" {
		return a.Username
	}
	return name
}

// Account holds the spendable float of exactly one agent.
type Account struct {
	ID            int64           `json:"id" db:"id"`
	AccountNumber string          `json:"account_number" db:"account_number"`
	UserID        int64           `json:"user_id" db:"user_id"`
	Balance       decimal.Decimal `json:"balance" db:"balance"`
}

// AgentListRow is the admin agent-management projection: identity plus
// float balance and today's sales volume.
type AgentListRow struct {
	ID         int64           `json:"id" db:"id"`
	FirstName  string          `json:"first_name" db:"first_name"`
	LastName   string          `json:"last_name" db:"last_name"`
	Username   string          `json:"username" db:"username"`
	Phone      string          `json:"phone" db:"phone"`
	Role       string          `json:"role" db:"role"`
	BranchID   *int64          `json:"branch_id" db:"branch_id"`
	BranchName *string         `json:"branch_name" db:"branch_name"`
	Balance    decimal.Decimal `json:"balance" db:"balance"`
	TodaySales decimal.Decimal `json:"today_sales" db:"today_sales"`
}

type LoginHistory struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	DeviceInfo string    `db:"device_info"`
	IPAddress  string    `db:"ip_address"`
	CreatedAt  time.Time `db:"created_at"`
}
