package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service identifies which transaction table a record belongs to.
const (
	ServiceMomo    = "momo"
	ServiceBank    = "bank"
	ServiceAirtime = "airtime"
	ServiceSim     = "sim"
	ServiceSusu    = "susu"
)

type MomoTransaction struct {
	ID            int64           `json:"id" db:"id"`
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	AgentID       int64           `json:"agent_id" db:"agent_id"`
	AgentName     string          `json:"agent_name" db:"agent_name"`
	CustomerName  string          `json:"customer_name" db:"customer_name"`
	CustomerPhone string          `json:"customer_phone" db:"customer_phone"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Type          string          `json:"type" db:"type"`
	Network       string          `json:"network" db:"network"`
	MomoReference string          `json:"momo_reference" db:"momo_reference"`
	ReferenceNote string          `json:"reference_note" db:"reference_note"`
	Status        string          `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

type BankTransaction struct {
	ID              int64           `json:"id" db:"id"`
	TransactionID   string          `json:"transaction_id" db:"transaction_id"`
	AgentID         int64           `json:"agent_id" db:"agent_id"`
	AgentName       string          `json:"agent_name" db:"agent_name"`
	CustomerName    string          `json:"customer_name" db:"customer_name"`
	CustomerAccount string          `json:"customer_account" db:"customer_account"`
	BankName        string          `json:"bank_name" db:"bank_name"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Type            string          `json:"type" db:"type"`
	ReferenceNote   string          `json:"reference_note" db:"reference_note"`
	Status          string          `json:"status" db:"status"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

type AirtimeLog struct {
	ID            int64           `json:"id" db:"id"`
	EmployeeID    int64           `json:"employee_id" db:"employee_id"`
	CustomerName  string          `json:"customer_name" db:"customer_name"`
	CustomerPhone string          `json:"customer_phone" db:"customer_phone"`
	Network       string          `json:"network" db:"network"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	ReferenceNote string          `json:"reference_note" db:"reference_note"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

type SimSale struct {
	ID            int64           `json:"id" db:"id"`
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	EmployeeID    int64           `json:"employee_id" db:"employee_id"`
	CustomerName  string          `json:"customer_name" db:"customer_name"`
	CustomerPhone string          `json:"customer_phone" db:"customer_phone"`
	IDType        string          `json:"id_type" db:"id_type"`
	IDNumber      string          `json:"id_number" db:"id_number"`
	Network       string          `json:"network" db:"network"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	ReferenceNote string          `json:"reference_note" db:"reference_note"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

type SusuContribution struct {
	ID            int64           `json:"id" db:"id"`
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	AgentID       int64           `json:"agent_id" db:"agent_id"`
	AgentName     string          `json:"agent_name" db:"agent_name"`
	CustomerName  string          `json:"customer_name" db:"customer_name"`
	CustomerPhone string          `json:"customer_phone" db:"customer_phone"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	SusuGroup     string          `json:"susu_group" db:"susu_group"`
	Reference     string          `json:"reference" db:"reference"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// ActivityRow is one line of the cross-service recent activity feed.
type ActivityRow struct {
	Service       string          `json:"service" db:"service"`
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	CustomerName  string          `json:"customer_name" db:"customer_name"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Type          string          `json:"type" db:"type"`
	Network       string          `json:"network" db:"network"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}
