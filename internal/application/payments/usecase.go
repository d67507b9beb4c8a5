// Package payments integra el pedido con el proveedor externo de checkout.
// El pago es aditivo: el pedido existe antes de iniciar el pago y un fallo del
// proveedor nunca revierte ni corrompe el pedido, solo se reporta aparte.
package payments

import (
	"context"
	"fmt"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

// CheckoutProvider crea una sesión de pago y devuelve su id y la URL de
// redirección. Es una llamada externa lenta y falible: la implementación debe
// acotar el round trip con timeout.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, order *entity.Order, lines []*repository.LineWithProduct) (sessionID, url string, err error)
}

// PaymentUseCase crea sesiones de pago para pedidos existentes.
type PaymentUseCase struct {
	orderRepo repository.OrderRepository
	provider  CheckoutProvider
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(orderRepo repository.OrderRepository, provider CheckoutProvider) *PaymentUseCase {
	return &PaymentUseCase{orderRepo: orderRepo, provider: provider}
}

// CreateSession crea la sesión en el proveedor y persiste su id en el pedido.
// Solo el dueño del pedido puede iniciarlo. Un fallo del proveedor devuelve
// ErrExternalService sin tocar el pedido.
func (uc *PaymentUseCase) CreateSession(ctx context.Context, actorID, orderID string) (*dto.PaymentSessionResponse, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: orderId requerido", domain.ErrInvalidInput)
	}
	ord, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	if ord.UserID != actorID {
		return nil, domain.ErrForbidden
	}
	lines, err := uc.orderRepo.GetLinesByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	sessionID, url, err := uc.provider.CreateSession(ctx, ord, lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalService, err)
	}
	if err := uc.orderRepo.UpdatePayment(ctx, ord.ID, sessionID, entity.PaymentStatusPending); err != nil {
		return nil, err
	}
	return &dto.PaymentSessionResponse{SessionID: sessionID, URL: url}, nil
}
