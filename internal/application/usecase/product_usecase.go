package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. Las mutaciones son solo de
// administrador (la ruta lo garantiza con RequireRole); la lectura pública
// muestra únicamente productos disponibles.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo, disponible por defecto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Price:       in.Price,
		URLImage:    in.URLImage,
		Description: in.Description,
		Category:    in.Category,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica cambios parciales, incluida la bandera de disponibilidad.
// Cambiar el precio no afecta pedidos existentes: las líneas guardan el precio
// al momento de la compra.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.URLImage != nil {
		product.URLImage = *in.URLImage
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Available != nil {
		product.Available = *in.Available
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListAvailable catálogo público: solo productos disponibles.
func (uc *ProductUseCase) ListAvailable(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// ListAll catálogo completo para administración, disponibles primero.
func (uc *ProductUseCase) ListAll(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

func toProductList(list []*entity.Product) *dto.ProductListResponse {
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(list))}
	for _, p := range list {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		URLImage:    p.URLImage,
		Description: p.Description,
		Category:    p.Category,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
