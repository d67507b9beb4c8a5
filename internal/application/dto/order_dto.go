package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest una línea del carrito enviada al checkout.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest materialización del carrito en un pedido.
// No acepta total: el total siempre se recalcula del lado del servidor a
// partir del precio vigente del catálogo (evita manipulación de precios).
type CreateOrderRequest struct {
	SellerID        string             `json:"sellerId"`
	DeliveryAddress string             `json:"deliveryAddress"`
	DeliveryNumber  string             `json:"deliveryNumber"`
	PaymentMethod   string             `json:"paymentMethod"`
	Items           []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest cambio de estado solicitado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse línea del pedido con el precio capturado en la creación.
type OrderLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subTotal"`
}

// OrderResponse representación completa de un pedido.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"userId"`
	SellerID        string              `json:"sellerId"`
	CustomerName    string              `json:"customerName,omitempty"`
	TotalPrice      decimal.Decimal     `json:"totalPrice"`
	DeliveryAddress string              `json:"deliveryAddress"`
	DeliveryNumber  string              `json:"deliveryNumber"`
	PaymentMethod   string              `json:"paymentMethod,omitempty"`
	PaymentStatus   string              `json:"paymentStatus"`
	Status          string              `json:"status"`
	SaleDate        time.Time           `json:"saleDate"`
	Items           []OrderLineResponse `json:"items,omitempty"`
}

// OrderListResponse listado de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}
