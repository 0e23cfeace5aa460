package domain

import "github.com/shopspring/decimal"

// AdminSummary holds the dashboard counters.
type AdminSummary struct {
	TotalUsers     int             `json:"totalUsers"`
	TotalBookings  int             `json:"totalBookings"`
	TotalOrders    int             `json:"totalOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	UnreadMessages int             `json:"unreadMessages"`
	TotalMessages  int             `json:"totalMessages"`
	TotalMenuItems int             `json:"totalMenuItems"`
	TodaysSpecials int             `json:"todaysSpecials"`
}

// CartOverview is one identity's cart as listed on the admin dashboard.
type CartOverview struct {
	Identity   string          `json:"userEmail"`
	Items      []CartLine      `json:"items"`
	ItemCount  int             `json:"itemCount"`
	TotalValue decimal.Decimal `json:"totalValue"`
}
