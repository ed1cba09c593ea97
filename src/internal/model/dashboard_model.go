package model

type ActivityItem struct {
	Name    string  `json:"name"`
	Action  string  `json:"action"`
	Amount  float64 `json:"amount"`
	Service string  `json:"service"`
	Network string  `json:"network,omitempty"`
	Time    string  `json:"time"`
}

type AdminDashboardResponse struct {
	TodaySales     float64        `json:"today_sales"`
	Period         string         `json:"period"`
	PeriodSales    float64        `json:"period_sales"`
	TotalFloat     float64        `json:"total_float"`
	ActiveAgents   int64          `json:"active_agents"`
	RecentActivity []ActivityItem `json:"recent_activity"`
}

type DailySalesPoint struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

type SalesAnalyticsRequest struct {
	Days int `json:"-"`
}

type AgentRankingRequest struct {
	Period string `json:"-" validate:"omitempty,oneof=day week month"`
	Limit  int    `json:"-"`
}

type RankedAgent struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	TotalAmount       float64 `json:"total_amount"`
	TotalTransactions int64   `json:"total_transactions"`
}

type WeeklyChart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type ManagerDashboardResponse struct {
	DailyTransactions float64        `json:"daily_transactions"`
	ActiveAgents      int64          `json:"active_agents"`
	PendingRequests   int64          `json:"pending_withdrawals"`
	TotalFloat        float64        `json:"total_float"`
	ManagerName       string         `json:"managerName"`
	RecentActivity    []ActivityItem `json:"recent_activity"`
	Chart             struct {
		Weekly WeeklyChart `json:"weekly"`
	} `json:"chart"`
}

type EmployeeDashboardResponse struct {
	TotalTransactions   float64 `json:"totalTransactions"`
	MomoTransactions    int64   `json:"momoTransactions"`
	BankTransactions    int64   `json:"bankTransactions"`
	AirtimeTransactions int64   `json:"airtimeTransactions"`
	SimTransactions     int64   `json:"simTransactions"`
	SusuTransactions    int64   `json:"susuTransactions"`
	TotalRecords        int64   `json:"totalRecords"`
}
