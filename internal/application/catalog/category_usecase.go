package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// List devuelve todas las categorías con su conteo de productos activos.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	rows, err := uc.categoryRepo.ListWithCount()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toCategoryResponse(&rows[i]))
	}
	return out, nil
}

// Get devuelve una categoría con su conteo de productos activos.
func (uc *CategoryUseCase) Get(id string) (*dto.CategoryResponse, error) {
	row, err := uc.categoryRepo.GetWithCount(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCategoryResponse(row)
	return &resp, nil
}

// Create crea una categoría (admin).
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(&repository.CategoryWithCount{Category: *category})
	return &resp, nil
}

func toCategoryResponse(row *repository.CategoryWithCount) dto.CategoryResponse {
	c := &row.Category
	return dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Image:        c.Image,
		ProductCount: row.ProductCount,
		CreatedAt:    c.CreatedAt,
	}
}
