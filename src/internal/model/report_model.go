package model

import "time"

type ReportRequest struct {
	Type     string `json:"type"`
	BranchID *int64 `json:"branch_id"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

type ReportSummary struct {
	TotalVolume       float64 `json:"total_volume"`
	TotalTransactions int64   `json:"total_transactions"`
	TotalCommission   float64 `json:"total_commission"`
	FloatChange       float64 `json:"float_change"`
}

type ReportAgent struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

type ReportTransaction struct {
	Date      time.Time `json:"date"`
	AgentName string    `json:"agent_name"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Service   string    `json:"service"`
}

type ReportBranch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ReportResponse struct {
	Start        string              `json:"start"`
	End          string              `json:"end"`
	Summary      ReportSummary       `json:"summary"`
	DailyTrend   []DailySalesPoint   `json:"daily_trend"`
	TopAgents    []ReportAgent       `json:"top_agents"`
	Transactions []ReportTransaction `json:"transactions"`
	Branches     []ReportBranch      `json:"branches"`
}
