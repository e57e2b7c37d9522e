package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UseCase casos de uso del carrito de compras.
type UseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso del carrito.
func NewUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{cartRepo: cartRepo, productRepo: productRepo}
}

// View devuelve el carrito con precios y stock vivos. El total se calcula
// sobre la marcha (Σ price × qty): el carrito nunca guarda precios.
func (uc *UseCase) View(userID string) (*dto.CartResponse, error) {
	rows, err := uc.cartRepo.ListWithProducts(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CartLineResponse, 0, len(rows))
	total := decimal.Zero
	count := 0
	for i := range rows {
		r := &rows[i]
		items = append(items, dto.CartLineResponse{
			ID:            r.ID,
			Quantity:      r.Quantity,
			ProductID:     r.ProductID,
			Name:          r.ProductName,
			Price:         r.Price,
			Image:         r.ProductImage,
			StockQuantity: r.StockQuantity,
			CreatedAt:     r.CreatedAt,
		})
		total = total.Add(r.Price.Mul(decimal.NewFromInt(int64(r.Quantity))))
		count += r.Quantity
	}
	return &dto.CartResponse{Items: items, Total: total, Count: count}, nil
}

// Add agrega un producto al carrito. Si ya hay una línea para ese producto se
// fusionan las cantidades; la cantidad resultante se valida contra el stock.
func (uc *UseCase) Add(userID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.cartRepo.GetByUserAndProduct(userID, in.ProductID)
	if err != nil {
		return nil, err
	}
	newQty := in.Quantity
	if existing != nil {
		newQty += existing.Quantity
	}
	if newQty > product.StockQuantity {
		return nil, domain.ErrInsufficientStock
	}

	if existing != nil {
		if err := uc.cartRepo.UpdateQuantity(existing.ID, newQty); err != nil {
			return nil, err
		}
	} else {
		now := time.Now()
		item := &entity.CartItem{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.cartRepo.Insert(item); err != nil {
			return nil, err
		}
	}
	return uc.View(userID)
}

// UpdateQuantity sobrescribe la cantidad de una línea propia, validando stock.
// Líneas ajenas responden igual que inexistentes: ErrNotFound.
func (uc *UseCase) UpdateQuantity(userID, lineID string, in dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	line, err := uc.cartRepo.GetLineWithStock(lineID, userID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity > line.StockQuantity {
		return nil, domain.ErrInsufficientStock
	}
	if err := uc.cartRepo.UpdateQuantity(lineID, in.Quantity); err != nil {
		return nil, err
	}
	return uc.View(userID)
}

// Remove elimina una línea propia del carrito.
func (uc *UseCase) Remove(userID, lineID string) (*dto.CartResponse, error) {
	affected, err := uc.cartRepo.Delete(lineID, userID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.View(userID)
}

// Clear vacía el carrito del usuario. Vaciar un carrito ya vacío no es error.
func (uc *UseCase) Clear(userID string) error {
	return uc.cartRepo.Clear(userID)
}
