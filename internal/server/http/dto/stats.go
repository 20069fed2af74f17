package dto

// DashboardStatsResponse is the staff dashboard snapshot.
type DashboardStatsResponse struct {
	PendingOrders   int64   `json:"pending_orders"`
	PreparingOrders int64   `json:"preparing_orders"`
	ReadyOrders     int64   `json:"ready_orders"`
	TodayRevenue    float64 `json:"today_revenue"`
	TodayOrders     int64   `json:"today_orders"`
}

// ErrorResponse carries a human-readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
