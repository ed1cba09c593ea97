package entity

type Branch struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Location  *string `json:"location" db:"location"`
	ManagerID *int64  `json:"manager_id" db:"manager_id"`
}

// BranchRow adds the assigned manager's identity and the number of agents
// attached to the branch.
type BranchRow struct {
	Branch
	ManagerFullname string `json:"manager_fullname" db:"manager_fullname"`
	ManagerName     string `json:"manager_name" db:"manager_name"`
	AgentCount      int64  `json:"agent_count" db:"agent_count"`
}
