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

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para el carrito. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// ListWithProducts lista las líneas del carrito unidas con el producto vivo.
// Solo entran productos activos: líneas de productos desactivados quedan
// fuera tanto de la vista como del checkout.
func (r *CartRepo) ListWithProducts(userID string) ([]repository.CartLineRow, error) {
	query := `
		SELECT ci.id, ci.quantity, ci.created_at,
		       p.id, p.name, p.image, p.price, p.stock_quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id AND p.is_active = true
		WHERE ci.user_id = $1
		ORDER BY ci.created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()
	var out []repository.CartLineRow
	for rows.Next() {
		var l repository.CartLineRow
		if err := rows.Scan(
			&l.ID, &l.Quantity, &l.CreatedAt,
			&l.ProductID, &l.ProductName, &l.ProductImage, &l.Price, &l.StockQuantity,
		); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// GetByUserAndProduct obtiene la línea de un usuario para un producto. Devuelve (nil, nil) si no hay.
func (r *CartRepo) GetByUserAndProduct(userID, productID string) (*entity.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items WHERE user_id = $1 AND product_id = $2`
	var item entity.CartItem
	err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &item, nil
}

// GetLineWithStock obtiene una línea propia con el stock vivo del producto.
// Líneas ajenas devuelven (nil, nil), igual que inexistentes.
func (r *CartRepo) GetLineWithStock(lineID, userID string) (*repository.CartLineRow, error) {
	query := `
		SELECT ci.id, ci.quantity, ci.created_at,
		       p.id, p.name, p.image, p.price, p.stock_quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.id = $1 AND ci.user_id = $2`
	var l repository.CartLineRow
	err := r.q.QueryRow(context.Background(), query, lineID, userID).Scan(
		&l.ID, &l.Quantity, &l.CreatedAt,
		&l.ProductID, &l.ProductName, &l.ProductImage, &l.Price, &l.StockQuantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart line: %w", err)
	}
	return &l, nil
}

// Insert persiste una línea nueva. Devuelve ErrDuplicate si ya hay línea para (user, product).
func (r *CartRepo) Insert(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sobrescribe la cantidad de una línea.
func (r *CartRepo) UpdateQuantity(lineID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cart_items SET quantity = $2, updated_at = now() WHERE id = $1`,
		lineID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}

// Delete elimina una línea propia. Devuelve las filas afectadas: 0 significa
// línea inexistente o de otro usuario.
func (r *CartRepo) Delete(lineID, userID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, lineID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Clear vacía el carrito del usuario.
func (r *CartRepo) Clear(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
