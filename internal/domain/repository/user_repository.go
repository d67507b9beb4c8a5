package repository

import (
	"context"

	"github.com/jhoicas/delivery-api/internal/domain/entity"
)

// SellerSummary es la proyección de un vendedor con su carga de pedidos
// (para el tablero de administración).
type SellerSummary struct {
	User       *entity.User
	OrderCount int
}

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	// ListSellers devuelve usuarios activos con rol SELLER o ADMINISTRATOR
	// (candidatos a vendedor asignado en el checkout).
	ListSellers(ctx context.Context) ([]*entity.User, error)
	// ListSellersWithOrderCount incluye el número de pedidos asignados a cada vendedor.
	ListSellersWithOrderCount(ctx context.Context) ([]*SellerSummary, error)
}
