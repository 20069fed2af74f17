package model

// DashboardStats is a point-in-time snapshot of the staff dashboard
// counters. Recomputed on every request, never cached.
type DashboardStats struct {
	PendingOrders   int64
	PreparingOrders int64
	ReadyOrders     int64
	TodayRevenue    float64
	TodayOrders     int64
}
