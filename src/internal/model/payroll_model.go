package model

type ReconcileRequest struct {
	Start string `json:"-"`
	End   string `json:"-"`
	Page  int    `json:"-"`
	Limit int    `json:"-"`
}

type PayrollAgent struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	BranchName string  `json:"branch_name"`
	Earned     float64 `json:"earned"`
	Paid       float64 `json:"paid"`
	Pending    float64 `json:"pending"`
}

type PayrollStats struct {
	TotalPayable float64 `json:"totalPayable"`
	TotalPaid    float64 `json:"totalPaid"`
	Pending      float64 `json:"pending"`
	DueCount     int     `json:"dueCount"`
}

type ReconcileResponse struct {
	Agents     []PayrollAgent `json:"agents"`
	Stats      PayrollStats   `json:"stats"`
	Pagination Pagination     `json:"pagination"`
}

type PayRequest struct {
	AgentIDs   []int64 `json:"agent_ids" validate:"required,min=1,dive,gt=0"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	PayoutType string  `json:"payout_type" validate:"omitempty,oneof=commission salary bonus"`
	Method     string  `json:"method" validate:"omitempty,oneof=momo bank cash"`
	Note       string  `json:"note" validate:"max=255"`
}
