package dto

import "github.com/shopspring/decimal"

// RecentOrderResponse pedido reciente en el tablero de administración.
type RecentOrderResponse struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Status       string          `json:"status"`
	SaleDate     string          `json:"saleDate"`
}

// StatsResponse agregados del tablero de administración.
type StatsResponse struct {
	TotalUsers    int                   `json:"totalUsers"`
	TotalProducts int                   `json:"totalProducts"`
	TotalOrders   int                   `json:"totalOrders"`
	PendingOrders int                   `json:"pendingOrders"`
	TotalRevenue  decimal.Decimal       `json:"totalRevenue"`
	RecentOrders  []RecentOrderResponse `json:"recentOrders"`
}
