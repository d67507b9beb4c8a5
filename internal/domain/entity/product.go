package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Solo administradores lo mutan.
// El precio se copia a la línea del pedido al momento de la compra: una línea
// nunca es una referencia viva al precio actual (integridad histórica).
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal // precio de venta vigente
	URLImage    string
	Description string
	Category    string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
