package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `o.id, o.user_id, o.order_number, o.total_amount, o.shipping_fee, o.final_amount,
	o.payment_method, o.status, o.shipping_name, o.shipping_phone, o.shipping_address, o.notes,
	o.created_at, o.updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido. Devuelve ErrDuplicate si el
// order_number colisiona: el caller reintenta con otro número.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, order_number, total_amount, shipping_fee, final_amount,
			payment_method, status, shipping_name, shipping_phone, shipping_address, notes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.OrderNumber, order.TotalAmount, order.ShippingFee, order.FinalAmount,
		order.PaymentMethod, order.Status, order.ShippingName, order.ShippingPhone, order.ShippingAddress,
		order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price, total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.getOne(`SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id)
}

// GetByIDAndUser obtiene un pedido propio. Pedidos ajenos devuelven (nil, nil).
func (r *OrderRepo) GetByIDAndUser(id, userID string) (*entity.Order, error) {
	return r.getOne(`SELECT `+orderColumns+` FROM orders o WHERE o.id = $1 AND o.user_id = $2`, id, userID)
}

func (r *OrderRepo) getOne(query string, args ...any) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&o.ID, &o.UserID, &o.OrderNumber, &o.TotalAmount, &o.ShippingFee, &o.FinalAmount,
		&o.PaymentMethod, &o.Status, &o.ShippingName, &o.ShippingPhone, &o.ShippingAddress,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListByUser lista los pedidos de un usuario, el más reciente primero.
func (r *OrderRepo) ListByUser(userID string) ([]repository.OrderSummary, error) {
	query := `
		SELECT ` + orderColumns + `, COUNT(oi.id) AS item_count
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = $1
		GROUP BY o.id
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var out []repository.OrderSummary
	for rows.Next() {
		var s repository.OrderSummary
		o := &s.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.OrderNumber, &o.TotalAmount, &o.ShippingFee, &o.FinalAmount,
			&o.PaymentMethod, &o.Status, &o.ShippingName, &o.ShippingPhone, &o.ShippingAddress,
			&o.Notes, &o.CreatedAt, &o.UpdatedAt, &s.ItemCount,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListAdmin lista pedidos de todos los usuarios, con filtro opcional por
// estado, paginados y con el total para la metadata de página.
func (r *OrderRepo) ListAdmin(status string, limit, offset int) ([]repository.AdminOrderRow, int, error) {
	where := ""
	args := []any{}
	if status != "" {
		where = "WHERE o.status = $1"
		args = append(args, status)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM orders o %s`, where)
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+orderColumns+`, u.email, COUNT(oi.id) AS item_count
		FROM orders o
		JOIN users u ON u.id = o.user_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
		%s
		GROUP BY o.id, u.email
		ORDER BY o.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list admin orders: %w", err)
	}
	defer rows.Close()
	var out []repository.AdminOrderRow
	for rows.Next() {
		var row repository.AdminOrderRow
		o := &row.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.OrderNumber, &o.TotalAmount, &o.ShippingFee, &o.FinalAmount,
			&o.PaymentMethod, &o.Status, &o.ShippingName, &o.ShippingPhone, &o.ShippingAddress,
			&o.Notes, &o.CreatedAt, &o.UpdatedAt, &row.CustomerEmail, &row.ItemCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan admin order: %w", err)
		}
		out = append(out, row)
	}
	return out, total, rows.Err()
}

// ItemsWithProducts lista las líneas de un pedido con los datos actuales del producto.
func (r *OrderRepo) ItemsWithProducts(orderID string) ([]repository.OrderItemRow, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, oi.total,
		       p.name, p.image, p.brand
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var out []repository.OrderItemRow
	for rows.Next() {
		var row repository.OrderItemRow
		i := &row.Item
		if err := rows.Scan(
			&i.ID, &i.OrderID, &i.ProductID, &i.Quantity, &i.Price, &i.Total,
			&row.ProductName, &row.ProductImage, &row.ProductBrand,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// UpdateStatus cambia el estado del pedido. La validación de transición es del caso de uso.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// HasDeliveredProduct indica si el usuario tiene un pedido entregado que incluya el producto.
func (r *OrderRepo) HasDeliveredProduct(userID, productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(
			SELECT 1
			FROM orders o
			JOIN order_items oi ON oi.order_id = o.id
			WHERE o.user_id = $1 AND oi.product_id = $2 AND o.status = 'delivered'
		)`, userID, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check delivered product: %w", err)
	}
	return exists, nil
}

// CountByUser cuenta los pedidos de un usuario.
func (r *OrderRepo) CountByUser(userID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count user orders: %w", err)
	}
	return count, nil
}
