package orders

import (
	"context"

	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con un OrderRepository
// atado a la tx. Si fn retorna error se hace rollback: nunca quedan filas
// parciales de pedido.
type TxRunner interface {
	Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// ReceiptPDFGenerator genera el recibo PDF de un pedido.
type ReceiptPDFGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, customer *entity.User, seller *entity.User, lines []*repository.LineWithProduct) ([]byte, error)
}
