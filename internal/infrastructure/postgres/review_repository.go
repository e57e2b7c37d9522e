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

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador de persistencia para reseñas.
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persiste una reseña. El índice único (user_id, product_id) garantiza
// una por usuario y producto; su violación se traduce a ErrDuplicate.
func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, product_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		review.ID, review.UserID, review.ProductID, review.Rating, review.Comment,
		review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// Exists indica si el usuario ya reseñó el producto.
func (r *ReviewRepo) Exists(userID, productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = $1 AND product_id = $2)`,
		userID, productID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check review exists: %w", err)
	}
	return exists, nil
}

// ListByProduct lista las reseñas de un producto con su autor, la más reciente primero.
func (r *ReviewRepo) ListByProduct(productID string) ([]repository.ReviewRow, error) {
	query := `
		SELECT rv.id, rv.user_id, rv.product_id, rv.rating, rv.comment, rv.created_at, rv.updated_at,
		       u.name, u.avatar
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.product_id = $1
		ORDER BY rv.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var out []repository.ReviewRow
	for rows.Next() {
		var row repository.ReviewRow
		v := &row.Review
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.ProductID, &v.Rating, &v.Comment, &v.CreatedAt, &v.UpdatedAt,
			&row.UserName, &row.UserAvatar,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetWithUser obtiene una reseña con su autor. Devuelve (nil, nil) si no existe.
func (r *ReviewRepo) GetWithUser(id string) (*repository.ReviewRow, error) {
	query := `
		SELECT rv.id, rv.user_id, rv.product_id, rv.rating, rv.comment, rv.created_at, rv.updated_at,
		       u.name, u.avatar
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.id = $1`
	var row repository.ReviewRow
	v := &row.Review
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.UserID, &v.ProductID, &v.Rating, &v.Comment, &v.CreatedAt, &v.UpdatedAt,
		&row.UserName, &row.UserAvatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &row, nil
}
