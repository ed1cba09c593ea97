package model

// TopUpRequest credits float to each listed agent.
type TopUpRequest struct {
	AgentIDs []int64 `json:"agent_ids" validate:"required,min=1,dive,gt=0"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Note     string  `json:"note" validate:"max=255"`
}

// DeductRequest debits float; a note is mandatory for the audit trail.
type DeductRequest struct {
	AgentIDs []int64 `json:"agent_ids" validate:"required,min=1,dive,gt=0"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Note     string  `json:"note" validate:"required,max=255"`
}

// AgentMutationResult reports the outcome for a single agent in a bulk
// operation.
type AgentMutationResult struct {
	AgentID int64  `json:"agent_id"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type BulkMutationResponse struct {
	SuccessCount int                   `json:"successCount"`
	FailCount    int                   `json:"failCount"`
	Results      []AgentMutationResult `json:"results"`
}

type FloatListRequest struct {
	Page   int    `json:"-"`
	Search string `json:"-"`
	Branch string `json:"-"`
	Sort   string `json:"-"`
	Order  string `json:"-"`
}

type FloatHistoryRequest struct {
	Page   int    `json:"-"`
	Search string `json:"-"`
	From   string `json:"-"`
	To     string `json:"-"`
	Action string `json:"-"`
}

type CreateFloatRequestRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Reason string  `json:"reason" validate:"max=255"`
}

type ProcessFloatRequestRequest struct {
	RequestID int64  `json:"-" validate:"required,gt=0"`
	Status    string `json:"status" validate:"required,oneof=approved rejected"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}
