package model

type CreateBranchRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Location *string `json:"location" validate:"omitempty,max=255"`
}

type UpdateBranchRequest struct {
	ID        int64   `json:"-" validate:"required,gt=0"`
	Name      *string `json:"name" validate:"omitempty,max=100"`
	Location  *string `json:"location" validate:"omitempty,max=255"`
	ManagerID *int64  `json:"manager_id"`
}
