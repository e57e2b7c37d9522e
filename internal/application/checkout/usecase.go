package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// Reintentos del checkout completo ante colisión de order_number.
const maxOrderAttempts = 3

// Mínimos de los datos de envío (mismos que declaran los tags del request).
const (
	minShippingNameLen    = 2
	minShippingAddressLen = 10
)

// UseCase caso de uso de checkout: convierte el carrito en un pedido de forma
// atómica. Todo pasa o nada pasa: descuento de stock, cabecera, líneas y
// vaciado del carrito viven en una sola transacción.
type UseCase struct {
	tx        TxRunner
	orderRepo repository.OrderRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de checkout.
func NewUseCase(tx TxRunner, orderRepo repository.OrderRepository, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, orderRepo: orderRepo, log: log}
}

// PlaceOrder crea un pedido desde el carrito del usuario.
//
// Dentro de la transacción:
//  1. lee las líneas del carrito con precio y stock vivos (solo productos activos);
//  2. calcula subtotal, tarifa de envío y total;
//  3. inserta la cabecera con un order_number nuevo;
//  4. descuenta stock con UPDATE condicional por línea: si alguno no alcanza,
//     se aborta todo (ningún stock queda descontado);
//  5. inserta las líneas copiando el precio vigente;
//  6. vacía el carrito.
//
// Una colisión de order_number reintenta la transacción completa hasta 3 veces.
func (uc *UseCase) PlaceOrder(ctx context.Context, userID string, in dto.PlaceOrderRequest) (*dto.OrderDetailResponse, error) {
	if !entity.IsValidPayment(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidPhone(in.ShippingPhone) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.ShippingName) < minShippingNameLen || len(in.ShippingAddress) < minShippingAddressLen {
		return nil, domain.ErrInvalidInput
	}

	var placed *entity.Order
	var placedItems []repository.OrderItemRow

	for attempt := 1; attempt <= maxOrderAttempts; attempt++ {
		err := uc.tx.Run(ctx, func(r TxRepos) error {
			lines, err := r.Cart.ListWithProducts(userID)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				return domain.ErrEmptyCart
			}

			subtotal := decimal.Zero
			for i := range lines {
				subtotal = subtotal.Add(lines[i].Price.Mul(decimal.NewFromInt(int64(lines[i].Quantity))))
			}
			fee := shippingFee(subtotal)
			now := time.Now()
			order := &entity.Order{
				ID:              uuid.New().String(),
				UserID:          userID,
				OrderNumber:     newOrderNumber(),
				TotalAmount:     subtotal,
				ShippingFee:     fee,
				FinalAmount:     subtotal.Add(fee),
				PaymentMethod:   in.PaymentMethod,
				Status:          entity.OrderStatusPending,
				ShippingName:    in.ShippingName,
				ShippingPhone:   in.ShippingPhone,
				ShippingAddress: in.ShippingAddress,
				Notes:           in.Notes,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := r.Order.Create(order); err != nil {
				return err
			}

			items := make([]repository.OrderItemRow, 0, len(lines))
			for i := range lines {
				line := &lines[i]
				ok, err := r.Product.DecrementStock(line.ProductID, line.Quantity)
				if err != nil {
					return err
				}
				if !ok {
					// aborta la tx: ninguna línea anterior queda descontada
					return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, line.ProductName)
				}
				item := &entity.OrderItem{
					ID:        uuid.New().String(),
					OrderID:   order.ID,
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
					Price:     line.Price,
					Total:     line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
				}
				if err := r.Order.CreateItem(item); err != nil {
					return err
				}
				items = append(items, repository.OrderItemRow{
					Item:         *item,
					ProductName:  line.ProductName,
					ProductImage: line.ProductImage,
				})
			}

			if err := r.Cart.Clear(userID); err != nil {
				return err
			}
			placed = order
			placedItems = items
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicate) && attempt < maxOrderAttempts {
			uc.log.Warn().Int("attempt", attempt).Msg("colisión de order_number, reintentando checkout")
			continue
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}

	uc.log.Info().
		Str("order_id", placed.ID).
		Str("order_number", placed.OrderNumber).
		Str("user_id", userID).
		Str("final_amount", placed.FinalAmount.String()).
		Msg("pedido creado")

	return toOrderDetail(placed, placedItems), nil
}

// ListMyOrders devuelve los pedidos del usuario, el más reciente primero.
func (uc *UseCase) ListMyOrders(userID string) ([]dto.OrderSummaryResponse, error) {
	rows, err := uc.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderSummaryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.OrderSummaryResponse{
			OrderResponse: *ToOrderResponse(&rows[i].Order),
			ItemCount:     rows[i].ItemCount,
		})
	}
	return out, nil
}

// MyOrderDetail devuelve un pedido propio con sus líneas. Pedidos ajenos
// responden igual que inexistentes: ErrNotFound.
func (uc *UseCase) MyOrderDetail(userID, orderID string) (*dto.OrderDetailResponse, error) {
	order, err := uc.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.ItemsWithProducts(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderDetail(order, items), nil
}

// ToOrderResponse mapea la cabecera del pedido a su DTO de salida.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		TotalAmount:     o.TotalAmount,
		ShippingFee:     o.ShippingFee,
		FinalAmount:     o.FinalAmount,
		PaymentMethod:   o.PaymentMethod,
		Status:          o.Status,
		ShippingName:    o.ShippingName,
		ShippingPhone:   o.ShippingPhone,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
	}
}

func toOrderDetail(o *entity.Order, items []repository.OrderItemRow) *dto.OrderDetailResponse {
	out := make([]dto.OrderItemResponse, 0, len(items))
	for i := range items {
		r := &items[i]
		out = append(out, dto.OrderItemResponse{
			ID:           r.Item.ID,
			ProductID:    r.Item.ProductID,
			ProductName:  r.ProductName,
			ProductImage: r.ProductImage,
			ProductBrand: r.ProductBrand,
			Quantity:     r.Item.Quantity,
			Price:        r.Item.Price,
			Total:        r.Item.Total,
		})
	}
	return &dto.OrderDetailResponse{
		OrderResponse: *ToOrderResponse(o),
		Items:         out,
	}
}
