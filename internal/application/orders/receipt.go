package orders

import (
	"context"

	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/order"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de un pedido (vista de confirmación).
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, userRepo repository.UserRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, userRepo: userRepo, generator: generator}
}

// Receipt devuelve los bytes del PDF. Misma regla de visibilidad que GetByID.
func (uc *ReceiptUseCase) Receipt(ctx context.Context, actor order.Actor, orderID string) ([]byte, error) {
	ord, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	if !order.CanView(actor, ord) {
		return nil, domain.ErrForbidden
	}
	lines, err := uc.orderRepo.GetLinesByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.userRepo.GetByID(ctx, ord.UserID)
	if err != nil {
		return nil, err
	}
	seller, err := uc.userRepo.GetByID(ctx, ord.SellerID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReceipt(ctx, ord, customer, seller, lines)
}
