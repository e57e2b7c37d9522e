package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStats agregados de catálogo para el dashboard.
type ProductStats struct {
	Total      int
	Active     int
	Featured   int
	OutOfStock int
}

// UserStats agregados de usuarios para el dashboard.
type UserStats struct {
	Total     int
	Customers int
	Admins    int
}

// OrderStats agregados de pedidos para el dashboard.
type OrderStats struct {
	Total        int
	Pending      int
	Confirmed    int
	Shipping     int
	Delivered    int
	Cancelled    int
	TotalRevenue decimal.Decimal
	Today        int
}

// RecentOrder fila del listado de pedidos recientes del dashboard.
type RecentOrder struct {
	ID           string
	OrderNumber  string
	TotalAmount  decimal.Decimal
	Status       string
	CustomerName string
	CreatedAt    time.Time
}

// TopProduct producto más vendido (suma de cantidades en pedidos no cancelados).
type TopProduct struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Image     string
	TotalSold int
}

// StatsRepository consultas de solo lectura para el dashboard de administración.
type StatsRepository interface {
	ProductStats(ctx context.Context) (*ProductStats, error)
	UserStats(ctx context.Context) (*UserStats, error)
	OrderStats(ctx context.Context) (*OrderStats, error)
	RecentOrders(ctx context.Context, limit int) ([]RecentOrder, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
}
