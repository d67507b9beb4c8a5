package orders

import (
	"context"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/order"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

// OrderQueryUseCase proyecciones de lectura de pedidos por rol.
type OrderQueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderQueryUseCase construye el caso de uso.
func NewOrderQueryUseCase(orderRepo repository.OrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo}
}

// ListMine devuelve los pedidos del cliente autenticado, más recientes primero.
func (uc *OrderQueryUseCase) ListMine(ctx context.Context, userID string) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{Items: make([]dto.OrderResponse, 0, len(list))}
	for _, ord := range list {
		out.Items = append(out.Items, *toOrderResponse(ord, ""))
	}
	return out, nil
}

// ListAll devuelve todos los pedidos con datos del cliente (vendedor/administrador).
func (uc *OrderQueryUseCase) ListAll(ctx context.Context) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{Items: make([]dto.OrderResponse, 0, len(list))}
	for _, row := range list {
		out.Items = append(out.Items, *toOrderResponse(row.Order, row.CustomerName))
	}
	return out, nil
}

// GetByID devuelve el pedido con sus líneas. Solo el dueño, un vendedor o un
// administrador pueden verlo.
func (uc *OrderQueryUseCase) GetByID(ctx context.Context, actor order.Actor, orderID string) (*dto.OrderResponse, error) {
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
	resp := toOrderResponse(ord, "")
	resp.Items = toLineResponses(lines)
	return resp, nil
}
