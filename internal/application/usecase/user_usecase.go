package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	"github.com/jhoicas/delivery-api/internal/domain"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios (administración) y listado público de vendedores.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con paginación (administración).
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{
		Items: make([]dto.UserResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, u := range list {
		out.Items = append(out.Items, *toUserResponse(u))
	}
	return out, nil
}

// Update cambia rol o estado de un usuario (administración). Es la única vía
// de promoción a SELLER o ADMINISTRATOR: el registro siempre crea CUSTOMER.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != nil {
		if !entity.IsValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Status != nil {
		if *in.Status != entity.UserStatusActive && *in.Status != entity.UserStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario (administración).
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ListSellers devuelve los vendedores activos para elegir en el checkout.
// Es público: solo expone id y nombre.
func (uc *UserUseCase) ListSellers(ctx context.Context) ([]dto.SellerResponse, error) {
	list, err := uc.repo.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SellerResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.SellerResponse{ID: u.ID, Name: u.Name})
	}
	return out, nil
}

// ListSellersWithOrderCount vendedores con su carga de pedidos (administración).
func (uc *UserUseCase) ListSellersWithOrderCount(ctx context.Context) ([]dto.SellerSummaryResponse, error) {
	list, err := uc.repo.ListSellersWithOrderCount(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SellerSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SellerSummaryResponse{
			ID:         s.User.ID,
			Name:       s.User.Name,
			Email:      s.User.Email,
			Role:       s.User.Role,
			OrderCount: s.OrderCount,
		})
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
