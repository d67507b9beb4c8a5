package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, user_id, seller_id, total_price, delivery_address, delivery_number,
	payment_method, payment_status, payment_id, status, sale_date, created_at, updated_at`

// Create persiste la cabecera del pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, seller_id, total_price, delivery_address, delivery_number,
		                    payment_method, payment_status, payment_id, status, sale_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.UserID, order.SellerID, order.TotalPrice,
		order.DeliveryAddress, order.DeliveryNumber,
		order.PaymentMethod, order.PaymentStatus, nullIfEmpty(order.PaymentID),
		order.Status, order.SaleDate, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateLine persiste una línea del pedido con el precio capturado.
func (r *OrderRepo) CreateLine(ctx context.Context, line *entity.OrderLine) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		line.ID, line.OrderID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve nil, nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	ord, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return ord, nil
}

// GetLinesByOrderID obtiene las líneas con nombre e imagen del producto.
func (r *OrderRepo) GetLinesByOrderID(ctx context.Context, orderID string) ([]*repository.LineWithProduct, error) {
	query := `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.unit_price, i.subtotal,
		       p.name, p.url_image
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*repository.LineWithProduct
	for rows.Next() {
		var l entity.OrderLine
		var name, image string
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal, &name, &image); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &repository.LineWithProduct{Line: &l, ProductName: name, ProductImage: image})
	}
	return list, rows.Err()
}

// ListByUser pedidos del cliente, más recientes primero.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, ord)
	}
	return list, rows.Err()
}

// ListAll todos los pedidos con datos del cliente y del vendedor asignado.
func (r *OrderRepo) ListAll(ctx context.Context) ([]*repository.OrderWithCustomer, error) {
	query := `
		SELECT o.id, o.user_id, o.seller_id, o.total_price, o.delivery_address, o.delivery_number,
		       o.payment_method, o.payment_status, o.payment_id, o.status, o.sale_date, o.created_at, o.updated_at,
		       c.name, c.email, COALESCE(s.name, '')
		FROM orders o
		JOIN users c ON c.id = o.user_id
		LEFT JOIN users s ON s.id = o.seller_id
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	defer rows.Close()
	var list []*repository.OrderWithCustomer
	for rows.Next() {
		var ord entity.Order
		var paymentID *string
		var row repository.OrderWithCustomer
		err := rows.Scan(
			&ord.ID, &ord.UserID, &ord.SellerID, &ord.TotalPrice,
			&ord.DeliveryAddress, &ord.DeliveryNumber,
			&ord.PaymentMethod, &ord.PaymentStatus, &paymentID,
			&ord.Status, &ord.SaleDate, &ord.CreatedAt, &ord.UpdatedAt,
			&row.CustomerName, &row.CustomerEmail, &row.SellerName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order with customer: %w", err)
		}
		if paymentID != nil {
			ord.PaymentID = *paymentID
		}
		row.Order = &ord
		list = append(list, &row)
	}
	return list, rows.Err()
}

// UpdateStatusIfCurrent cambia el estado solo si el persistido sigue siendo from.
// El WHERE sobre el estado actual serializa peticiones concurrentes: la que
// pierde la carrera no afecta filas y devuelve false.
func (r *OrderRepo) UpdateStatusIfCurrent(ctx context.Context, id, from, to string) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`,
		id, from, to, time.Now(),
	)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdatePayment persiste el id de sesión de pago y el estado de pago.
func (r *OrderRepo) UpdatePayment(ctx context.Context, id, paymentID, paymentStatus string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET payment_id = $2, payment_status = $3, updated_at = $4 WHERE id = $1`,
		id, nullIfEmpty(paymentID), paymentStatus, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update order payment: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var ord entity.Order
	var paymentID *string
	err := row.Scan(
		&ord.ID, &ord.UserID, &ord.SellerID, &ord.TotalPrice,
		&ord.DeliveryAddress, &ord.DeliveryNumber,
		&ord.PaymentMethod, &ord.PaymentStatus, &paymentID,
		&ord.Status, &ord.SaleDate, &ord.CreatedAt, &ord.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if paymentID != nil {
		ord.PaymentID = *paymentID
	}
	return &ord, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
