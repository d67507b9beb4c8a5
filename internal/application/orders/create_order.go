package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/cart"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

// CreateOrderUseCase convierte un carrito validado más los datos de entrega en
// un pedido persistido (cabecera + líneas) en una sola transacción.
type CreateOrderUseCase struct {
	txRunner    TxRunner
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(txRunner TxRunner, userRepo repository.UserRepository, productRepo repository.ProductRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{txRunner: txRunner, userRepo: userRepo, productRepo: productRepo}
}

// Create valida el carrito contra el catálogo vigente y persiste el pedido.
//
// Orden de validación (cada paso produce un fallo distinto):
//  1. lista de productos no vacía
//  2. dirección y número de entrega presentes
//  3. sellerId resuelve a un usuario con rol SELLER o ADMINISTRATOR
//  4. cada productId existe (un desconocido aborta todo el pedido)
//  5. cada producto está disponible (available = true)
//
// El total se calcula siempre del lado del servidor: precio vigente × cantidad,
// consolidando líneas duplicadas con el agregador de carrito. Cualquier total
// enviado por el cliente se ignora.
func (uc *CreateOrderUseCase) Create(ctx context.Context, customerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: el pedido no tiene productos", domain.ErrInvalidInput)
	}
	if in.DeliveryAddress == "" || in.DeliveryNumber == "" {
		return nil, fmt.Errorf("%w: faltan datos de entrega", domain.ErrInvalidInput)
	}
	if in.SellerID == "" {
		return nil, fmt.Errorf("%w: vendedor requerido", domain.ErrInvalidInput)
	}
	seller, err := uc.userRepo.GetByID(ctx, in.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil || !seller.CanSell() {
		return nil, fmt.Errorf("%w: vendedor inválido", domain.ErrInvalidInput)
	}

	// Resolver cada línea contra el catálogo (solo lectura, fuera de la tx).
	// El agregador consolida productos repetidos y calcula subtotales y total.
	ct := cart.New()
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, fmt.Errorf("%w: cantidad inválida", domain.ErrInvalidInput)
		}
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
		}
		if !product.Available {
			return nil, fmt.Errorf("%w: producto no disponible: %s", domain.ErrInvalidInput, product.Name)
		}
		ct.AddItem(product.ID, product.Name, product.Price, item.Quantity)
	}

	now := time.Now()
	ord := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          customerID,
		SellerID:        in.SellerID,
		TotalPrice:      ct.TotalPrice(),
		DeliveryAddress: in.DeliveryAddress,
		DeliveryNumber:  in.DeliveryNumber,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   entity.PaymentStatusPending,
		Status:          entity.OrderStatusPending,
		SaleDate:        now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	lines := make([]*entity.OrderLine, 0, ct.TotalItems())
	for _, l := range ct.Lines() {
		lines = append(lines, &entity.OrderLine{
			ID:        uuid.New().String(),
			OrderID:   ord.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
			Subtotal:  l.SubTotal,
		})
	}

	// Cabecera y líneas en una sola transacción: todas las filas o ninguna.
	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(ctx, ord); err != nil {
			return err
		}
		for _, line := range lines {
			if err := orderRepo.CreateLine(ctx, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toOrderResponse(ord, "")
	for i, line := range lines {
		resp.Items = append(resp.Items, dto.OrderLineResponse{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: ct.Lines()[i].Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}
	return resp, nil
}

func toOrderResponse(ord *entity.Order, customerName string) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:              ord.ID,
		UserID:          ord.UserID,
		SellerID:        ord.SellerID,
		CustomerName:    customerName,
		TotalPrice:      ord.TotalPrice,
		DeliveryAddress: ord.DeliveryAddress,
		DeliveryNumber:  ord.DeliveryNumber,
		PaymentMethod:   ord.PaymentMethod,
		PaymentStatus:   ord.PaymentStatus,
		Status:          ord.Status,
		SaleDate:        ord.SaleDate,
	}
}

func toLineResponses(lines []*repository.LineWithProduct) []dto.OrderLineResponse {
	out := make([]dto.OrderLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.OrderLineResponse{
			ID:          l.Line.ID,
			ProductID:   l.Line.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Line.Quantity,
			UnitPrice:   l.Line.UnitPrice,
			Subtotal:    l.Line.Subtotal,
		})
	}
	return out
}
