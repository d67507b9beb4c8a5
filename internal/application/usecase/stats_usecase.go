package usecase

import (
	"context"

	"github.com/jhoicas/delivery-api/internal/application/dto"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

// recentOrdersLimit pedidos recientes mostrados en el tablero.
const recentOrdersLimit = 10

// StatsUseCase agregados del tablero de administración.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// AdminStats reúne contadores, ingreso total (sin pedidos cancelados) y los
// pedidos más recientes.
func (uc *StatsUseCase) AdminStats(ctx context.Context) (*dto.StatsResponse, error) {
	totalUsers, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := uc.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := uc.repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	pendingOrders, err := uc.repo.CountOrdersByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := uc.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.repo.RecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.StatsResponse{
		TotalUsers:    totalUsers,
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		PendingOrders: pendingOrders,
		TotalRevenue:  totalRevenue,
		RecentOrders:  make([]dto.RecentOrderResponse, 0, len(recent)),
	}
	for _, r := range recent {
		resp.RecentOrders = append(resp.RecentOrders, dto.RecentOrderResponse{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			TotalPrice:   r.TotalPrice,
			Status:       r.Status,
			SaleDate:     r.SaleDate,
		})
	}
	return resp, nil
}
