package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const (
	defaultLimit = 12
	maxLimit     = 100
	reviewsShown = 5
)

// Columnas de ordenamiento permitidas en el listado público. Cualquier otro
// valor se rechaza: el nombre de columna jamás llega crudo al SQL.
var allowedSorts = map[string]string{
	"price":      "price",
	"name":       "name",
	"created_at": "created_at",
}

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, reviewRepo repository.ReviewRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo, reviewRepo: reviewRepo}
}

// List devuelve el catálogo público paginado: solo productos activos, con
// filtros opcionales y orden por whitelist.
func (uc *ProductUseCase) List(q dto.ListProductsQuery) (*dto.ProductListResponse, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sortBy := "created_at"
	if q.SortBy != "" {
		col, ok := allowedSorts[q.SortBy]
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		sortBy = col
	}
	sortOrder := "DESC"
	switch q.SortOrder {
	case "", "desc", "DESC":
	case "asc", "ASC":
		sortOrder = "ASC"
	default:
		return nil, domain.ErrInvalidInput
	}

	filter := repository.ProductFilter{
		CategoryID: q.Category,
		Brand:      q.Brand,
		Search:     q.Search,
		Featured:   q.Featured,
	}
	if q.MinPrice != "" {
		min, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.MinPrice = &min
	}
	if q.MaxPrice != "" {
		max, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.MaxPrice = &max
	}

	rows, total, err := uc.productRepo.List(filter, limit, (page-1)*limit, sortBy, sortOrder)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(rows))
	for i := range rows {
		items = append(items, *toProductResponse(&rows[i]))
	}
	return &dto.ProductListResponse{
		Items:    items,
		PageMeta: dto.NewPageMeta(total, page, limit),
	}, nil
}

// Detail devuelve un producto activo con sus reseñas más recientes.
// Productos inexistentes o inactivos responden igual: ErrNotFound.
func (uc *ProductUseCase) Detail(id string) (*dto.ProductDetailResponse, error) {
	row, err := uc.productRepo.GetActiveDetail(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	reviews, err := uc.reviewRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	if len(reviews) > reviewsShown {
		reviews = reviews[:reviewsShown]
	}
	recent := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		recent = append(recent, toReviewResponse(&reviews[i]))
	}
	return &dto.ProductDetailResponse{
		ProductResponse: *toProductResponse(row),
		RecentReviews:   recent,
	}, nil
}

// Create crea un producto (admin). La categoría debe existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Brand:         in.Brand,
		Model:         in.Model,
		Color:         in.Color,
		Storage:       in.Storage,
		RAM:           in.RAM,
		ScreenSize:    in.ScreenSize,
		Battery:       in.Battery,
		Camera:        in.Camera,
		OS:            in.OS,
		Image:         in.Image,
		Images:        in.Images,
		StockQuantity: in.StockQuantity,
		IsFeatured:    in.IsFeatured,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.OriginalPrice != nil {
		product.OriginalPrice = *in.OriginalPrice
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(&repository.ProductListRow{Product: *product, CategoryName: category.Name}), nil
}

// Update aplica cambios parciales a un producto (admin): los campos nil no se tocan.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.OriginalPrice != nil {
		product.OriginalPrice = *in.OriginalPrice
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.Storage != nil {
		product.Storage = *in.Storage
	}
	if in.RAM != nil {
		product.RAM = *in.RAM
	}
	if in.ScreenSize != nil {
		product.ScreenSize = *in.ScreenSize
	}
	if in.Battery != nil {
		product.Battery = *in.Battery
	}
	if in.Camera != nil {
		product.Camera = *in.Camera
	}
	if in.OS != nil {
		product.OS = *in.OS
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockQuantity = *in.StockQuantity
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(&repository.ProductListRow{Product: *product}), nil
}

// Delete elimina un producto (admin). Si el producto aparece en algún pedido
// se desactiva en vez de borrarse: los pedidos históricos conservan su línea.
// Devuelve true si se desactivó (soft) y false si se borró de verdad.
func (uc *ProductUseCase) Delete(id string) (bool, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, domain.ErrNotFound
	}
	hasOrders, err := uc.productRepo.HasOrderHistory(id)
	if err != nil {
		return false, err
	}
	if hasOrders {
		return true, uc.productRepo.Deactivate(id)
	}
	return false, uc.productRepo.Delete(id)
}

func toProductResponse(row *repository.ProductListRow) *dto.ProductResponse {
	p := &row.Product
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Brand:         p.Brand,
		Model:         p.Model,
		Color:         p.Color,
		Storage:       p.Storage,
		RAM:           p.RAM,
		ScreenSize:    p.ScreenSize,
		Battery:       p.Battery,
		Camera:        p.Camera,
		OS:            p.OS,
		Image:         p.Image,
		Images:        p.Images,
		CategoryID:    p.CategoryID,
		CategoryName:  row.CategoryName,
		StockQuantity: p.StockQuantity,
		IsFeatured:    p.IsFeatured,
		AverageRating: row.AverageRating,
		ReviewCount:   row.ReviewCount,
		CreatedAt:     p.CreatedAt,
	}
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
