package admin

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const (
	recentOrdersShown = 10
	topProductsShown  = 5
)

// DashboardUseCase agrega las estadísticas del panel de administración.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// Dashboard devuelve los agregados de catálogo, usuarios y pedidos, más los
// pedidos recientes y los productos más vendidos.
func (uc *DashboardUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	products, err := uc.statsRepo.ProductStats(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.statsRepo.UserStats(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := uc.statsRepo.OrderStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.statsRepo.RecentOrders(ctx, recentOrdersShown)
	if err != nil {
		return nil, err
	}
	top, err := uc.statsRepo.TopProducts(ctx, topProductsShown)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Products: dto.DashboardProductStats{
			Total:      products.Total,
			Active:     products.Active,
			Featured:   products.Featured,
			OutOfStock: products.OutOfStock,
		},
		Users: dto.DashboardUserStats{
			Total:     users.Total,
			Customers: users.Customers,
			Admins:    users.Admins,
		},
		Orders: dto.DashboardOrderStats{
			Total:        orders.Total,
			Pending:      orders.Pending,
			Confirmed:    orders.Confirmed,
			Shipping:     orders.Shipping,
			Delivered:    orders.Delivered,
			Cancelled:    orders.Cancelled,
			TotalRevenue: orders.TotalRevenue,
			Today:        orders.Today,
		},
		RecentOrders: make([]dto.DashboardRecentOrder, 0, len(recent)),
		TopProducts:  make([]dto.DashboardTopProduct, 0, len(top)),
	}
	for _, r := range recent {
		resp.RecentOrders = append(resp.RecentOrders, dto.DashboardRecentOrder{
			ID:           r.ID,
			OrderNumber:  r.OrderNumber,
			TotalAmount:  r.TotalAmount,
			Status:       r.Status,
			CustomerName: r.CustomerName,
			CreatedAt:    r.CreatedAt,
		})
	}
	for _, t := range top {
		resp.TopProducts = append(resp.TopProducts, dto.DashboardTopProduct{
			ID:        t.ID,
			Name:      t.Name,
			Price:     t.Price,
			Image:     t.Image,
			TotalSold: t.TotalSold,
		})
	}
	return resp, nil
}
