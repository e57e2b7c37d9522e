package checkout_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: el TxRunner simula el rollback restaurando un snapshot del
// estado cuando el callback devuelve error, igual que haría PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "00000000-0000-0000-0000-0000000000aa"

type fakeStore struct {
	lines       []repository.CartLineRow
	stock       map[string]int
	orders      []entity.Order
	items       []entity.OrderItem
	cartCleared bool

	// cuántas llamadas a Order.Create deben fallar con ErrDuplicate
	duplicateCreates int
}

func (s *fakeStore) clone() *fakeStore {
	c := *s
	c.lines = append([]repository.CartLineRow(nil), s.lines...)
	c.orders = append([]entity.Order(nil), s.orders...)
	c.items = append([]entity.OrderItem(nil), s.items...)
	c.stock = make(map[string]int, len(s.stock))
	for k, v := range s.stock {
		c.stock[k] = v
	}
	return &c
}

type fakeTxRunner struct{ s *fakeStore }

func (f *fakeTxRunner) Run(_ context.Context, fn func(r checkout.TxRepos) error) error {
	snapshot := f.s.clone()
	repos := checkout.TxRepos{
		Cart:    &fakeCartRepo{s: f.s},
		Order:   &fakeOrderRepo{s: f.s},
		Product: &fakeProductRepo{s: f.s},
	}
	if err := fn(repos); err != nil {
		// el contador de colisiones simula el índice único: no es estado
		// transaccional, sobrevive al rollback
		snapshot.duplicateCreates = f.s.duplicateCreates
		*f.s = *snapshot // rollback
		return err
	}
	return nil
}

type fakeCartRepo struct{ s *fakeStore }

func (r *fakeCartRepo) ListWithProducts(string) ([]repository.CartLineRow, error) {
	return append([]repository.CartLineRow(nil), r.s.lines...), nil
}
func (r *fakeCartRepo) Clear(string) error {
	r.s.lines = nil
	r.s.cartCleared = true
	return nil
}
func (r *fakeCartRepo) GetByUserAndProduct(_, _ string) (*entity.CartItem, error) { return nil, nil }
func (r *fakeCartRepo) GetLineWithStock(_, _ string) (*repository.CartLineRow, error) {
	return nil, nil
}
func (r *fakeCartRepo) Insert(*entity.CartItem) error { return nil }
func (r *fakeCartRepo) UpdateQuantity(string, int) error { return nil }
func (r *fakeCartRepo) Delete(_, _ string) (int64, error) { return 0, nil }

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	if r.s.duplicateCreates > 0 {
		r.s.duplicateCreates--
		return domain.ErrDuplicate
	}
	r.s.orders = append(r.s.orders, *order)
	return nil
}
func (r *fakeOrderRepo) CreateItem(item *entity.OrderItem) error {
	r.s.items = append(r.s.items, *item)
	return nil
}
func (r *fakeOrderRepo) GetByID(string) (*entity.Order, error) { return nil, nil }
func (r *fakeOrderRepo) GetByIDAndUser(_, _ string) (*entity.Order, error) { return nil, nil }
func (r *fakeOrderRepo) ListByUser(string) ([]repository.OrderSummary, error) {
	return nil, nil
}
func (r *fakeOrderRepo) ListAdmin(string, int, int) ([]repository.AdminOrderRow, int, error) {
	return nil, 0, nil
}
func (r *fakeOrderRepo) ItemsWithProducts(string) ([]repository.OrderItemRow, error) {
	return nil, nil
}
func (r *fakeOrderRepo) UpdateStatus(_, _ string) error { return nil }
func (r *fakeOrderRepo) HasDeliveredProduct(_, _ string) (bool, error) { return false, nil }
func (r *fakeOrderRepo) CountByUser(string) (int, error) { return 0, nil }

type fakeProductRepo struct{ s *fakeStore }

// DecrementStock replica el UPDATE condicional: solo descuenta si alcanza.
func (r *fakeProductRepo) DecrementStock(productID string, quantity int) (bool, error) {
	have, ok := r.s.stock[productID]
	if !ok || have < quantity {
		return false, nil
	}
	r.s.stock[productID] = have - quantity
	return true, nil
}
func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetActiveDetail(string) (*repository.ProductListRow, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) List(repository.ProductFilter, int, int, string, string) ([]repository.ProductListRow, int, error) {
	return nil, 0, nil
}
func (r *fakeProductRepo) HasOrderHistory(string) (bool, error) { return false, nil }
func (r *fakeProductRepo) Deactivate(string) error { return nil }
func (r *fakeProductRepo) Delete(string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func line(productID, name string, price int64, qty int) repository.CartLineRow {
	return repository.CartLineRow{
		ID:          "line-" + productID,
		Quantity:    qty,
		ProductID:   productID,
		ProductName: name,
		Price:       decimal.NewFromInt(price),
	}
}

func validRequest() dto.PlaceOrderRequest {
	return dto.PlaceOrderRequest{
		ShippingName:    "Nguyen Van A",
		ShippingPhone:   "0912345678",
		ShippingAddress: "123 Calle Principal, Distrito 1",
		PaymentMethod:   entity.PaymentCOD,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz: subtotal 200000 < 500000 → fee 30000 → total 230000.
// Stock descontado, precio copiado a la línea y carrito vaciado.
func TestPlaceOrder_CaminoFeliz(t *testing.T) {
	store := &fakeStore{
		lines: []repository.CartLineRow{
			line("p1", "Galaxy A54", 150000, 1),
			line("p2", "Funda", 25000, 2),
		},
		stock: map[string]int{"p1": 5, "p2": 10},
	}
	uc := checkout.NewUseCase(&fakeTxRunner{s: store}, &fakeOrderRepo{s: store}, testLogger())

	out, err := uc.PlaceOrder(context.Background(), testUserID, validRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(200000)), "subtotal: %s", out.TotalAmount)
	assert.True(t, out.ShippingFee.Equal(decimal.NewFromInt(30000)), "fee: %s", out.ShippingFee)
	assert.True(t, out.FinalAmount.Equal(decimal.NewFromInt(230000)), "total: %s", out.FinalAmount)
	assert.Equal(t, entity.OrderStatusPending, out.Status, "el pedido nace en pending")
	assert.Regexp(t, `^ORD\d+$`, out.OrderNumber)
	require.Len(t, out.Items, 2)

	// stock descontado y carrito vaciado
	assert.Equal(t, 4, store.stock["p1"])
	assert.Equal(t, 8, store.stock["p2"])
	assert.True(t, store.cartCleared, "el carrito debe quedar vacío")
	require.Len(t, store.orders, 1)
	require.Len(t, store.items, 2)

	// el precio de la línea es el vigente al comprar
	assert.True(t, store.items[0].Price.Equal(decimal.NewFromInt(150000)))
	assert.True(t, store.items[1].Total.Equal(decimal.NewFromInt(50000)))
}

// Subtotal en el umbral de 500000 → envío gratis.
func TestPlaceOrder_EnvioGratisDesdeElUmbral(t *testing.T) {
	store := &fakeStore{
		lines: []repository.CartLineRow{line("p1", "iPhone 15", 500000, 1)},
		stock: map[string]int{"p1": 3},
	}
	uc := checkout.NewUseCase(&fakeTxRunner{s: store}, &fakeOrderRepo{s: store}, testLogger())

	out, err := uc.PlaceOrder(context.Background(), testUserID, validRequest())
	require.NoError(t, err)
	assert.True(t, out.ShippingFee.IsZero(), "fee debe ser 0: %s", out.ShippingFee)
	assert.True(t, out.FinalAmount.Equal(decimal.NewFromInt(500000)))
}

// Si una línea no tiene stock suficiente, se aborta TODO: ni el stock de las
// líneas anteriores se descuenta, ni queda pedido, ni se vacía el carrito.
func TestPlaceOrder_StockInsuficienteRevierteTodo(t *testing.T) {
	store := &fakeStore{
		lines: []repository.CartLineRow{
			line("p1", "Galaxy A54", 100000, 2), // alcanza
			line("p2", "Pixel 8", 100000, 5),    // no alcanza
		},
		stock: map[string]int{"p1": 10, "p2": 3},
	}
	uc := checkout.NewUseCase(&fakeTxRunner{s: store}, &fakeOrderRepo{s: store}, testLogger())

	out, err := uc.PlaceOrder(context.Background(), testUserID, validRequest())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Pixel 8", "el error debe nombrar el producto sin stock")

	assert.Equal(t, 10, store.stock["p1"], "el stock de p1 no debe quedar descontado")
	assert.Equal(t, 3, store.stock["p2"])
	assert.Empty(t, store.orders, "no debe persistir ningún pedido")
	assert.Empty(t, store.items)
	assert.False(t, store.cartCleared, "el carrito debe quedar intacto")
}

// Carrito vacío no genera pedido.
func TestPlaceOrder_CarritoVacio(t *testing.T) {
	store := &fakeStore{stock: map[string]int{}}
	uc := checkout.NewUseCase(&fakeTxRunner{s: store}, &fakeOrderRepo{s: store}, testLogger())

	out, err := uc.PlaceOrder(context.Background(), testUserID, validRequest())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

// Una colisión de order_number reintenta la transacción completa y termina bien.
func TestPlaceOrder_ColisionDeNumeroReintenta(t *testing.T) {
	store := &fakeStore{
		lines:            []repository.CartLineRow{line("p1", "Galaxy A54", 100000, 1)},
		stock:            map[string]int{"p1": 5},
		duplicateCreates: 1,
	}
	uc := checkout.NewUseCase(&fakeTxRunner{s: store}, &fakeOrderRepo{s: store}, testLogger())

	out, err := uc.PlaceOrder(context.Background(), testUserID, validRequest())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 4, store.stock["p1"], "el stock se descuenta una sola vez")
	require.Len(t, store.orders, 1)
}

// Tres colisiones seguidas agotan los reintentos → ErrConflict.
func TestPlaceOrder_ColisionesAgotanReintentos(t *testing.T) {
	store := &fakeStore{
		lines:            []repository.CartLineRow{line("p1", "Galaxy A54", 100000, 1)},
		stock:            map[string]int{"p1": 5},
		duplicateCreates: 3,
	}
	uc := checkout.NewUseCase(&fakeTxRunner{s: store}, &fakeOrderRepo{s: store}, testLogger())

	out, err := uc.PlaceOrder(context.Background(), testUserID, validRequest())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, store.orders)
	assert.Equal(t, 5, store.stock["p1"], "nada debe quedar descontado")
}

// Método de pago y teléfono se validan antes de abrir transacción.
func TestPlaceOrder_ValidacionDeEntrada(t *testing.T) {
	store := &fakeStore{
		lines: []repository.CartLineRow{line("p1", "Galaxy A54", 100000, 1)},
		stock: map[string]int{"p1": 5},
	}
	uc := checkout.NewUseCase(&fakeTxRunner{s: store}, &fakeOrderRepo{s: store}, testLogger())

	in := validRequest()
	in.PaymentMethod = "paypal"
	_, err := uc.PlaceOrder(context.Background(), testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRequest()
	in.ShippingPhone = "12345"
	_, err = uc.PlaceOrder(context.Background(), testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// nombre de un solo carácter
	in = validRequest()
	in.ShippingName = "A"
	_, err = uc.PlaceOrder(context.Background(), testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// dirección demasiado corta
	in = validRequest()
	in.ShippingAddress = "Calle 1"
	_, err = uc.PlaceOrder(context.Background(), testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, store.orders)
}
