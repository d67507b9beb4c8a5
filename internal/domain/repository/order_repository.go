package repository

import (
	"context"

	"github.com/jhoicas/delivery-api/internal/domain/entity"
)

// OrderWithCustomer proyección de pedido con los datos básicos del cliente
// (vistas de vendedor y administrador).
type OrderWithCustomer struct {
	Order         *entity.Order
	CustomerName  string
	CustomerEmail string
	SellerName    string
}

// LineWithProduct proyección de línea de pedido con el nombre e imagen del
// producto (respuestas, recibo PDF y sesión de pago).
type LineWithProduct struct {
	Line         *entity.OrderLine
	ProductName  string
	ProductImage string
}

// OrderRepository puerto de persistencia para pedidos y sus líneas.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateLine(ctx context.Context, line *entity.OrderLine) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetLinesByOrderID(ctx context.Context, orderID string) ([]*LineWithProduct, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	// ListAll devuelve todos los pedidos con datos del cliente, más recientes primero.
	ListAll(ctx context.Context) ([]*OrderWithCustomer, error)
	// UpdateStatusIfCurrent aplica el cambio de estado solo si el estado
	// persistido sigue siendo from (UPDATE condicional, serializa carreras).
	// Devuelve false si ninguna fila coincidió.
	UpdateStatusIfCurrent(ctx context.Context, id, from, to string) (bool, error)
	// UpdatePayment persiste el id de sesión del proveedor de pagos.
	UpdatePayment(ctx context.Context, id, paymentID, paymentStatus string) error
}
