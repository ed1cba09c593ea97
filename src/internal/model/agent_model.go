package model

type ListAgentsRequest struct {
	Page   int    `json:"-"`
	Limit  int    `json:"-"`
	Search string `json:"-"`
	Sort   string `json:"-"`
	Order  string `json:"-"`
}

type CreateAgentRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Username  string `json:"username" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	Password  string `json:"password" validate:"required,min=6,max=100"`
}

type UpdateAgentRequest struct {
	ID        int64   `json:"-" validate:"required,gt=0"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Username  *string `json:"username" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,min=7,max=20"`
	Password  *string `json:"password" validate:"omitempty,min=6,max=100"`
}

type AgentStats struct {
	Total      int64   `json:"total"`
	Active     int64   `json:"active"`
	Inactive   int64   `json:"inactive"`
	TotalFloat float64 `json:"totalFloat"`
}
