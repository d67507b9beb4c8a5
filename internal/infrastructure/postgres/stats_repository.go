package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para el tablero de administración.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountUsers total de usuarios registrados.
func (r *StatsRepo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountProducts total de productos del catálogo.
func (r *StatsRepo) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

// CountOrders total de pedidos.
func (r *StatsRepo) CountOrders(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders`)
}

// CountOrdersByStatus pedidos en un estado dado.
func (r *StatsRepo) CountOrdersByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountOrdersByStatus: %w", err)
	}
	return n, nil
}

// TotalRevenue suma de total_price excluyendo pedidos cancelados.
// COALESCE devuelve cero si no hay pedidos.
func (r *StatsRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE status <> $1`,
		entity.OrderStatusCancelled,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stats.TotalRevenue: %w", err)
	}
	return total, nil
}

// RecentOrders últimos pedidos con el nombre del cliente.
func (r *StatsRepo) RecentOrders(ctx context.Context, limit int) ([]*repository.RecentOrder, error) {
	query := `
		SELECT o.id, u.name, o.total_price, o.status, TO_CHAR(o.sale_date, 'YYYY-MM-DD')
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.sale_date DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.RecentOrders: %w", err)
	}
	defer rows.Close()
	var list []*repository.RecentOrder
	for rows.Next() {
		var ro repository.RecentOrder
		if err := rows.Scan(&ro.ID, &ro.CustomerName, &ro.TotalPrice, &ro.Status, &ro.SaleDate); err != nil {
			return nil, fmt.Errorf("stats.RecentOrders scan: %w", err)
		}
		list = append(list, &ro)
	}
	return list, rows.Err()
}

func (r *StatsRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.count: %w", err)
	}
	return n, nil
}
