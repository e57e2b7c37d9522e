package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.category_id, p.name, p.description, p.price, p.original_price,
	p.brand, p.model, p.color, p.storage, p.ram, p.screen_size, p.battery, p.camera, p.os,
	p.image, p.images, p.stock_quantity, p.is_featured, p.is_active, p.created_at, p.updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, name, description, price, original_price,
			brand, model, color, storage, ram, screen_size, battery, camera, os,
			image, images, stock_quantity, is_featured, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Description, product.Price, product.OriginalPrice,
		product.Brand, product.Model, product.Color, product.Storage, product.RAM, product.ScreenSize,
		product.Battery, product.Camera, product.OS, product.Image, product.Images,
		product.StockQuantity, product.IsFeatured, product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (activo o no). Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice,
		&p.Brand, &p.Model, &p.Color, &p.Storage, &p.RAM, &p.ScreenSize,
		&p.Battery, &p.Camera, &p.OS, &p.Image, &p.Images,
		&p.StockQuantity, &p.IsFeatured, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetActiveDetail obtiene un producto activo con su categoría y agregados de reseñas.
func (r *ProductRepo) GetActiveDetail(id string) (*repository.ProductListRow, error) {
	query := `
		SELECT ` + productColumns + `, c.name,
		       COALESCE(ROUND(AVG(rv.rating)::numeric, 1), 0) AS average_rating,
		       COUNT(rv.id) AS review_count
		FROM products p
		JOIN categories c ON c.id = p.category_id
		LEFT JOIN reviews rv ON rv.product_id = p.id
		WHERE p.id = $1 AND p.is_active = true
		GROUP BY p.id, c.name`
	var row repository.ProductListRow
	if err := scanProductRow(r.q.QueryRow(context.Background(), query, id), &row); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}
	return &row, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, name = $3, description = $4, price = $5, original_price = $6,
			brand = $7, model = $8, color = $9, storage = $10, ram = $11, screen_size = $12,
			battery = $13, camera = $14, os = $15, image = $16, images = $17,
			stock_quantity = $18, is_featured = $19, updated_at = $20
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Description, product.Price, product.OriginalPrice,
		product.Brand, product.Model, product.Color, product.Storage, product.RAM, product.ScreenSize,
		product.Battery, product.Camera, product.OS, product.Image, product.Images,
		product.StockQuantity, product.IsFeatured, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos activos con filtros, orden por whitelist y paginación.
// sortBy y sortOrder YA vienen validados contra whitelist por el caso de uso:
// aquí se interpolan, nunca valores crudos del request.
func (r *ProductRepo) List(filter repository.ProductFilter, limit, offset int, sortBy, sortOrder string) ([]repository.ProductListRow, int, error) {
	where, args := buildProductWhere(filter)

	countQuery := `SELECT COUNT(*) FROM products p WHERE ` + where
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+productColumns+`, c.name,
		       COALESCE(ROUND(AVG(rv.rating)::numeric, 1), 0) AS average_rating,
		       COUNT(rv.id) AS review_count
		FROM products p
		JOIN categories c ON c.id = p.category_id
		LEFT JOIN reviews rv ON rv.product_id = p.id
		WHERE %s
		GROUP BY p.id, c.name
		ORDER BY p.%s %s
		LIMIT $%d OFFSET $%d`,
		where, sortBy, sortOrder, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var out []repository.ProductListRow
	for rows.Next() {
		var row repository.ProductListRow
		if err := scanProductRow(rows, &row); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, row)
	}
	return out, total, rows.Err()
}

// buildProductWhere arma el WHERE parametrizado del listado público. Siempre
// incluye p.is_active; cada filtro presente agrega un predicado con placeholder.
func buildProductWhere(filter repository.ProductFilter) (string, []any) {
	conds := []string{"p.is_active = true"}
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.CategoryID != "" {
		add("p.category_id = $%d", filter.CategoryID)
	}
	if filter.Brand != "" {
		add("p.brand ILIKE $%d", filter.Brand)
	}
	if filter.MinPrice != nil {
		add("p.price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("p.price <= $%d", *filter.MaxPrice)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d OR p.brand ILIKE $%d)", n, n, n))
	}
	if filter.Featured {
		conds = append(conds, "p.is_featured = true")
	}
	return strings.Join(conds, " AND "), args
}

// HasOrderHistory indica si el producto aparece en alguna línea de pedido.
func (r *ProductRepo) HasOrderHistory(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM order_items WHERE product_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check order history: %w", err)
	}
	return exists, nil
}

// Deactivate marca el producto como inactivo (soft delete): desaparece del
// catálogo pero los pedidos históricos conservan su línea.
func (r *ProductRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}

// Delete elimina el producto definitivamente (solo sin historial de pedidos).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// DecrementStock descuenta stock solo si alcanza: el UPDATE condicional hace
// la verificación y el descuento en una sola sentencia atómica, sin lock
// explícito. RowsAffected == 0 significa stock insuficiente (o producto
// inexistente) y el caller debe abortar la transacción.
func (r *ProductRepo) DecrementStock(productID string, quantity int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = stock_quantity - $2, updated_at = now()
		 WHERE id = $1 AND stock_quantity >= $2`,
		productID, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// scanProductRow escanea una fila de producto con categoría y agregados de reseñas.
func scanProductRow(row pgx.Row, out *repository.ProductListRow) error {
	p := &out.Product
	return row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice,
		&p.Brand, &p.Model, &p.Color, &p.Storage, &p.RAM, &p.ScreenSize,
		&p.Battery, &p.Camera, &p.OS, &p.Image, &p.Images,
		&p.StockQuantity, &p.IsFeatured, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&out.CategoryName, &out.AverageRating, &out.ReviewCount,
	)
}
