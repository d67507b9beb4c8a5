package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusPreparing  = "PREPARING"
	OrderStatusDispatched = "DISPATCHED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// Estados de pago (el proveedor de pagos es un colaborador externo).
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusFailed  = "FAILED"
)

// Order representa la cabecera de un pedido. Inmutable después de creado,
// excepto status y los campos de pago.
type Order struct {
	ID              string
	UserID          string // cliente dueño del pedido
	SellerID        string // vendedor asignado en el checkout
	TotalPrice      decimal.Decimal
	DeliveryAddress string
	DeliveryNumber  string
	PaymentMethod   string
	PaymentStatus   string
	PaymentID       string // id de la sesión de pago del proveedor externo
	Status          string
	SaleDate        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderLine representa una línea de un pedido: producto, cantidad y el precio
// unitario capturado al momento de la creación.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
