package review

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UseCase casos de uso de reseñas de productos.
type UseCase struct {
	reviewRepo  repository.ReviewRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso de reseñas.
func NewUseCase(reviewRepo repository.ReviewRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{reviewRepo: reviewRepo, orderRepo: orderRepo, productRepo: productRepo}
}

// Create publica una reseña. Solo pueden reseñar quienes tienen un pedido
// entregado que incluya el producto, y solo una vez por producto.
func (uc *UseCase) Create(userID string, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	delivered, err := uc.orderRepo.HasDeliveredProduct(userID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !delivered {
		return nil, domain.ErrForbidden
	}

	exists, err := uc.reviewRepo.Exists(userID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	rev := &entity.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: in.ProductID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.reviewRepo.Create(rev); err != nil {
		// carrera entre Exists y Create: el índice único manda
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	row, err := uc.reviewRepo.GetWithUser(rev.ID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	resp := toReviewResponse(row)
	return &resp, nil
}

// ListByProduct devuelve las reseñas de un producto, la más reciente primero.
func (uc *UseCase) ListByProduct(productID string) ([]dto.ReviewResponse, error) {
	rows, err := uc.reviewRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toReviewResponse(&rows[i]))
	}
	return out, nil
}

func toReviewResponse(row *repository.ReviewRow) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         row.Review.ID,
		Rating:     row.Review.Rating,
		Comment:    row.Review.Comment,
		UserName:   row.UserName,
		UserAvatar: row.UserAvatar,
		CreatedAt:  row.Review.CreatedAt,
	}
}
