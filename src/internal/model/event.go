package model

// Event is anything the messaging gateway can publish.
type Event interface {
	GetId() string
}

// TransactionEvent mirrors a just-written service transaction row.
type TransactionEvent struct {
	EventID string      `json:"event_id"`
	Service string      `json:"service"`
	AgentID int64       `json:"agent_id"`
	Payload interface{} `json:"payload"`
}

func (e *TransactionEvent) GetId() string { return e.EventID }

type FloatUpdateEvent struct {
	EventID string  `json:"event_id"`
	AgentID int64   `json:"agent_id"`
	Action  string  `json:"action"`
	Amount  float64 `json:"amount"`
}

func (e *FloatUpdateEvent) GetId() string { return e.EventID }

type PayrollUpdateEvent struct {
	EventID    string  `json:"event_id"`
	AgentID    int64   `json:"agent_id"`
	AgentName  string  `json:"agent_name"`
	Amount     float64 `json:"amount"`
	PayoutType string  `json:"payout_type"`
	Method     string  `json:"method"`
}

func (e *PayrollUpdateEvent) GetId() string { return e.EventID }

type DashboardUpdateEvent struct {
	EventID string                 `json:"event_id"`
	Rollup  AdminDashboardResponse `json:"rollup"`
}

func (e *DashboardUpdateEvent) GetId() string { return e.EventID }

type NotificationEvent struct {
	EventID    string `json:"event_id"`
	ReceiverID int64  `json:"receiver_id"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

func (e *NotificationEvent) GetId() string { return e.EventID }
