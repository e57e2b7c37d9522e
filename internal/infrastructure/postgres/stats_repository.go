package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para el dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// ProductStats agrega el estado del catálogo en una sola consulta.
func (r *StatsRepo) ProductStats(ctx context.Context) (*repository.ProductStats, error) {
	var s repository.ProductStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_active),
		       COUNT(*) FILTER (WHERE is_featured AND is_active),
		       COUNT(*) FILTER (WHERE stock_quantity = 0 AND is_active)
		FROM products`).Scan(&s.Total, &s.Active, &s.Featured, &s.OutOfStock)
	if err != nil {
		return nil, fmt.Errorf("product stats: %w", err)
	}
	return &s, nil
}

// UserStats agrega usuarios por rol.
func (r *StatsRepo) UserStats(ctx context.Context) (*repository.UserStats, error) {
	var s repository.UserStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE role = 'customer'),
		       COUNT(*) FILTER (WHERE role = 'admin')
		FROM users`).Scan(&s.Total, &s.Customers, &s.Admins)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	return &s, nil
}

// OrderStats agrega pedidos por estado. La facturación suma solo pedidos
// entregados: lo pendiente o cancelado no es ingreso.
func (r *StatsRepo) OrderStats(ctx context.Context) (*repository.OrderStats, error) {
	var s repository.OrderStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'confirmed'),
		       COUNT(*) FILTER (WHERE status = 'shipping'),
		       COUNT(*) FILTER (WHERE status = 'delivered'),
		       COUNT(*) FILTER (WHERE status = 'cancelled'),
		       COALESCE(SUM(final_amount) FILTER (WHERE status = 'delivered'), 0),
		       COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE)
		FROM orders`).Scan(
		&s.Total, &s.Pending, &s.Confirmed, &s.Shipping, &s.Delivered, &s.Cancelled,
		&s.TotalRevenue, &s.Today,
	)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	return &s, nil
}

// RecentOrders lista los últimos pedidos con el nombre del cliente.
func (r *StatsRepo) RecentOrders(ctx context.Context, limit int) ([]repository.RecentOrder, error) {
	query := `
		SELECT o.id, o.order_number, o.total_amount, o.status, u.name, o.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()
	var out []repository.RecentOrder
	for rows.Next() {
		var o repository.RecentOrder
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.TotalAmount, &o.Status, &o.CustomerName, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// TopProducts lista los productos más vendidos (suma de cantidades en pedidos
// no cancelados).
func (r *StatsRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProduct, error) {
	query := `
		SELECT p.id, p.name, p.price, p.image, COALESCE(SUM(oi.quantity), 0) AS total_sold
		FROM products p
		JOIN order_items oi ON oi.product_id = p.id
		JOIN orders o ON o.id = oi.order_id AND o.status <> 'cancelled'
		GROUP BY p.id
		ORDER BY total_sold DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var out []repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ID, &t.Name, &t.Price, &t.Image, &t.TotalSold); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
