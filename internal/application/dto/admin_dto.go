package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListOrdersQuery parámetros del listado de pedidos en el panel admin.
type ListOrdersQuery struct {
	Status string `query:"status"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

// DashboardProductStats agregados de catálogo.
type DashboardProductStats struct {
	Total      int `json:"total_products"`
	Active     int `json:"active_products"`
	Featured   int `json:"featured_products"`
	OutOfStock int `json:"out_of_stock"`
}

// DashboardUserStats agregados de usuarios.
type DashboardUserStats struct {
	Total     int `json:"total_users"`
	Customers int `json:"customers"`
	Admins    int `json:"admins"`
}

// DashboardOrderStats agregados de pedidos por estado más la facturación total.
type DashboardOrderStats struct {
	Total        int             `json:"total_orders"`
	Pending      int             `json:"pending_orders"`
	Confirmed    int             `json:"confirmed_orders"`
	Shipping     int             `json:"shipping_orders"`
	Delivered    int             `json:"delivered_orders"`
	Cancelled    int             `json:"cancelled_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Today        int             `json:"today_orders"`
}

// DashboardRecentOrder fila del listado de pedidos recientes.
type DashboardRecentOrder struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"order_number"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CustomerName string          `json:"customer_name"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DashboardTopProduct producto más vendido.
type DashboardTopProduct struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	TotalSold int             `json:"total_sold"`
}

// DashboardResponse estadísticas agregadas para el panel de administración.
type DashboardResponse struct {
	Products     DashboardProductStats  `json:"products"`
	Users        DashboardUserStats     `json:"users"`
	Orders       DashboardOrderStats    `json:"orders"`
	RecentOrders []DashboardRecentOrder `json:"recent_orders"`
	TopProducts  []DashboardTopProduct  `json:"top_products"`
}

// AdminOrderResponse pedido con datos del cliente para el panel admin.
type AdminOrderResponse struct {
	OrderResponse
	CustomerEmail string `json:"customer_email,omitempty"`
	ItemCount     int    `json:"item_count"`
}

// AdminOrderListResponse listado paginado de pedidos para el panel admin.
type AdminOrderListResponse struct {
	Items []AdminOrderResponse `json:"items"`
	PageMeta
}
