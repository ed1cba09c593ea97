package model

type LogMomoRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string  `json:"customer_phone" validate:"required,max=20"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Type          string  `json:"type" validate:"required,oneof=deposit withdraw"`
	Network       string  `json:"network" validate:"max=20"`
	MomoReference string  `json:"momo_reference" validate:"max=64"`
	ReferenceNote string  `json:"reference_note" validate:"max=255"`
}

type LogBankRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required,max=100"`
	CustomerAccount string  `json:"customer_account" validate:"required,max=40"`
	BankName        string  `json:"bank_name" validate:"required,max=100"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Type            string  `json:"type" validate:"required,oneof=deposit withdraw"`
	ReferenceNote   string  `json:"reference_note" validate:"max=255"`
}

type LogAirtimeRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string  `json:"customer_phone" validate:"required,max=20"`
	Network       string  `json:"network" validate:"required,max=20"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	ReferenceNote string  `json:"reference_note" validate:"max=255"`
}

type LogSimRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string  `json:"customer_phone" validate:"required,max=20"`
	IDType        string  `json:"id_type" validate:"required,max=40"`
	IDNumber      string  `json:"id_number" validate:"required,max=64"`
	Network       string  `json:"network" validate:"required,max=20"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	ReferenceNote string  `json:"reference_note" validate:"max=255"`
}

type LogSusuRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string  `json:"customer_phone" validate:"required,max=20"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	SusuGroup     string  `json:"susu_group" validate:"required,max=100"`
	Reference     string  `json:"reference" validate:"max=255"`
}

// ListTransactionsRequest scopes a history read. AllAgents is only
// honored for admin-tier callers.
type ListTransactionsRequest struct {
	Service   string `json:"-" validate:"required,oneof=momo bank airtime sim susu"`
	AgentID   int64  `json:"-"`
	AllAgents bool   `json:"-"`
	Start     string `json:"-"`
	End       string `json:"-"`
}
