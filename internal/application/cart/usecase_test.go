package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/cart"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const testUserID = "00000000-0000-0000-0000-0000000000aa"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCartRepo struct {
	items    map[string]*entity.CartItem // por ID de línea
	products map[string]*entity.Product
}

func newFakeCartRepo(products ...*entity.Product) *fakeCartRepo {
	r := &fakeCartRepo{items: map[string]*entity.CartItem{}, products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeCartRepo) ListWithProducts(userID string) ([]repository.CartLineRow, error) {
	var out []repository.CartLineRow
	for _, it := range r.items {
		if it.UserID != userID {
			continue
		}
		p := r.products[it.ProductID]
		if p == nil || !p.IsActive {
			continue
		}
		out = append(out, repository.CartLineRow{
			ID: it.ID, Quantity: it.Quantity, CreatedAt: it.CreatedAt,
			ProductID: p.ID, ProductName: p.Name, Price: p.Price, StockQuantity: p.StockQuantity,
		})
	}
	return out, nil
}

func (r *fakeCartRepo) GetByUserAndProduct(userID, productID string) (*entity.CartItem, error) {
	for _, it := range r.items {
		if it.UserID == userID && it.ProductID == productID {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) GetLineWithStock(lineID, userID string) (*repository.CartLineRow, error) {
	it := r.items[lineID]
	if it == nil || it.UserID != userID {
		return nil, nil
	}
	p := r.products[it.ProductID]
	return &repository.CartLineRow{
		ID: it.ID, Quantity: it.Quantity,
		ProductID: p.ID, ProductName: p.Name, Price: p.Price, StockQuantity: p.StockQuantity,
	}, nil
}

func (r *fakeCartRepo) Insert(item *entity.CartItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeCartRepo) UpdateQuantity(lineID string, quantity int) error {
	if it := r.items[lineID]; it != nil {
		it.Quantity = quantity
	}
	return nil
}

func (r *fakeCartRepo) Delete(lineID, userID string) (int64, error) {
	it := r.items[lineID]
	if it == nil || it.UserID != userID {
		return 0, nil
	}
	delete(r.items, lineID)
	return 1, nil
}

func (r *fakeCartRepo) Clear(userID string) error {
	for id, it := range r.items {
		if it.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeProductGetter struct{ products map[string]*entity.Product }

func (r *fakeProductGetter) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *fakeProductGetter) Create(*entity.Product) error { return nil }
func (r *fakeProductGetter) GetActiveDetail(string) (*repository.ProductListRow, error) {
	return nil, nil
}
func (r *fakeProductGetter) Update(*entity.Product) error { return nil }
func (r *fakeProductGetter) List(repository.ProductFilter, int, int, string, string) ([]repository.ProductListRow, int, error) {
	return nil, 0, nil
}
func (r *fakeProductGetter) HasOrderHistory(string) (bool, error) { return false, nil }
func (r *fakeProductGetter) Deactivate(string) error { return nil }
func (r *fakeProductGetter) Delete(string) error { return nil }
func (r *fakeProductGetter) DecrementStock(string, int) (bool, error) { return false, nil }

func product(id, name string, price int64, stock int, active bool) *entity.Product {
	return &entity.Product{
		ID: id, Name: name, Price: decimal.NewFromInt(price),
		StockQuantity: stock, IsActive: active,
	}
}

func newUseCase(products ...*entity.Product) (*cart.UseCase, *fakeCartRepo) {
	repo := newFakeCartRepo(products...)
	getter := &fakeProductGetter{products: repo.products}
	return cart.NewUseCase(repo, getter), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

// Agregar dos veces el mismo producto fusiona en UNA línea sumando cantidades.
func TestAdd_FusionaLineas(t *testing.T) {
	uc, repo := newUseCase(product("p1", "Galaxy A54", 100000, 10, true))

	_, err := uc.Add(testUserID, dto.AddCartItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	out, err := uc.Add(testUserID, dto.AddCartItemRequest{ProductID: "p1", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, out.Items, 1, "debe haber una sola línea para el producto")
	assert.Equal(t, 5, out.Items[0].Quantity)
	assert.Equal(t, 5, out.Count)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(500000)))
	assert.Len(t, repo.items, 1)
}

// La cantidad fusionada se valida contra el stock: 2 + 3 > 4 falla.
func TestAdd_FusionExcedeStock(t *testing.T) {
	uc, _ := newUseCase(product("p1", "Galaxy A54", 100000, 4, true))

	_, err := uc.Add(testUserID, dto.AddCartItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	_, err = uc.Add(testUserID, dto.AddCartItemRequest{ProductID: "p1", Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Productos inexistentes o inactivos responden igual: NotFound.
func TestAdd_ProductoInactivoONoExistente(t *testing.T) {
	uc, _ := newUseCase(product("p1", "Descontinuado", 100000, 10, false))

	_, err := uc.Add(testUserID, dto.AddCartItemRequest{ProductID: "p1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Add(testUserID, dto.AddCartItemRequest{ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdd_CantidadInvalida(t *testing.T) {
	uc, _ := newUseCase(product("p1", "Galaxy A54", 100000, 10, true))
	_, err := uc.Add(testUserID, dto.AddCartItemRequest{ProductID: "p1", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity / Remove / View
// ──────────────────────────────────────────────────────────────────────────────

// Update sobrescribe (no suma) y valida stock.
func TestUpdateQuantity_Sobrescribe(t *testing.T) {
	uc, repo := newUseCase(product("p1", "Galaxy A54", 100000, 10, true))
	_, err := uc.Add(testUserID, dto.AddCartItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	var lineID string
	for id := range repo.items {
		lineID = id
	}

	out, err := uc.UpdateQuantity(testUserID, lineID, dto.UpdateCartItemRequest{Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, out.Items[0].Quantity)

	_, err = uc.UpdateQuantity(testUserID, lineID, dto.UpdateCartItemRequest{Quantity: 11})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Líneas ajenas son invisibles: actualizar o borrar devuelve NotFound.
func TestUpdateQuantity_LineaAjena(t *testing.T) {
	uc, repo := newUseCase(product("p1", "Galaxy A54", 100000, 10, true))
	_, err := uc.Add("otro-usuario", dto.AddCartItemRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	var lineID string
	for id := range repo.items {
		lineID = id
	}

	_, err = uc.UpdateQuantity(testUserID, lineID, dto.UpdateCartItemRequest{Quantity: 2})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Remove(testUserID, lineID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La vista excluye líneas de productos desactivados y calcula el total vivo.
func TestView_ExcluyeInactivosYCalculaTotal(t *testing.T) {
	activo := product("p1", "Galaxy A54", 150000, 10, true)
	inactivo := product("p2", "Descontinuado", 99000, 10, true)
	uc, repo := newUseCase(activo, inactivo)

	_, err := uc.Add(testUserID, dto.AddCartItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	_, err = uc.Add(testUserID, dto.AddCartItemRequest{ProductID: "p2", Quantity: 1})
	require.NoError(t, err)

	// el producto se desactiva después de estar en el carrito
	repo.products["p2"].IsActive = false

	out, err := uc.View(testUserID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "la línea del producto inactivo no debe aparecer")
	assert.True(t, out.Total.Equal(decimal.NewFromInt(300000)))
	assert.Equal(t, 2, out.Count)
}

// Vaciar un carrito vacío no es error.
func TestClear_CarritoVacio(t *testing.T) {
	uc, _ := newUseCase()
	assert.NoError(t, uc.Clear(testUserID))
}
