package repository

import (
	"context"

	"github.com/jhoicas/delivery-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para el catálogo.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// ListAvailable devuelve solo productos con available = true (catálogo público).
	ListAvailable(ctx context.Context) ([]*entity.Product, error)
	// ListAll devuelve todo el catálogo, disponibles primero (vista de administración).
	ListAll(ctx context.Context) ([]*entity.Product, error)
}
