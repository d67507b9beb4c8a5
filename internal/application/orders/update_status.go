package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/order"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

// UpdateStatusUseCase aplica transiciones de estado sobre pedidos.
type UpdateStatusUseCase struct {
	orderRepo repository.OrderRepository
}

// NewUpdateStatusUseCase construye el caso de uso.
func NewUpdateStatusUseCase(orderRepo repository.OrderRepository) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{orderRepo: orderRepo}
}

// UpdateStatus intenta la transición del pedido al estado target.
//
// Secuencia: validar target → cargar pedido → autorizar actor → idempotencia
// (target == estado actual es éxito no-op) → validar grafo → UPDATE
// condicional sobre el estado leído. Si el UPDATE no afecta filas, otra
// petición ganó la carrera y el estado leído ya no es el persistido: se
// responde ErrInvalidTransition, nunca se pisa a ciegas.
func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, actor order.Actor, orderID, target string) (*dto.OrderResponse, error) {
	if !order.IsValidStatus(target) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, target)
	}
	ord, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	if err := order.AuthorizeTransition(actor, ord, target); err != nil {
		return nil, err
	}
	if ord.Status == target {
		// Reenvío del mismo estado: éxito idempotente.
		return toOrderResponse(ord, ""), nil
	}
	if !order.CanTransition(ord.Status, target) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, ord.Status, target)
	}
	ok, err := uc.orderRepo.UpdateStatusIfCurrent(ctx, ord.ID, ord.Status, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: el pedido cambió de estado, recargue e intente de nuevo", domain.ErrInvalidTransition)
	}
	ord.Status = target
	return toOrderResponse(ord, ""), nil
}
