package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// RecentOrder proyección ligera para el tablero de administración.
type RecentOrder struct {
	ID           string
	CustomerName string
	TotalPrice   decimal.Decimal
	Status       string
	SaleDate     string
}

// StatsRepository consultas agregadas de solo lectura para el tablero de administración.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountProducts(ctx context.Context) (int, error)
	CountOrders(ctx context.Context) (int, error)
	CountOrdersByStatus(ctx context.Context, status string) (int, error)
	// TotalRevenue suma total_price de los pedidos no cancelados.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	RecentOrders(ctx context.Context, limit int) ([]*RecentOrder, error)
}
