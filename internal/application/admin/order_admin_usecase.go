package admin

import (
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// OrderUseCase gestión de pedidos desde el panel de administración.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	log       *logger.Logger
}

// NewOrderUseCase construye el caso de uso de pedidos admin.
func NewOrderUseCase(orderRepo repository.OrderRepository, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, log: log}
}

// List devuelve los pedidos de todos los usuarios, paginados y con filtro
// opcional por estado.
func (uc *OrderUseCase) List(q dto.ListOrdersQuery) (*dto.AdminOrderListResponse, error) {
	if q.Status != "" && !entity.IsValidOrderStatus(q.Status) {
		return nil, domain.ErrInvalidInput
	}
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
	rows, total, err := uc.orderRepo.ListAdmin(q.Status, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdminOrderResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.AdminOrderResponse{
			OrderResponse: *checkout.ToOrderResponse(&rows[i].Order),
			CustomerEmail: rows[i].CustomerEmail,
			ItemCount:     rows[i].ItemCount,
		})
	}
	return &dto.AdminOrderListResponse{
		Items:    items,
		PageMeta: dto.NewPageMeta(total, page, limit),
	}, nil
}

// Detail devuelve cualquier pedido con sus líneas (sin filtrar por dueño).
func (uc *OrderUseCase) Detail(orderID string) (*dto.OrderDetailResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
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
		OrderResponse: *checkout.ToOrderResponse(order),
		Items:         out,
	}, nil
}

// UpdateStatus avanza el pedido por la máquina de estados:
// pending → confirmed → shipping → delivered, cancelled desde cualquier estado
// no terminal. Cualquier otro salto devuelve ErrInvalidTransition.
func (uc *OrderUseCase) UpdateStatus(orderID string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.IsValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(order.Status, in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.orderRepo.UpdateStatus(orderID, in.Status); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("order_id", orderID).
		Str("from", order.Status).
		Str("to", in.Status).
		Msg("estado de pedido actualizado")
	order.Status = in.Status
	return checkout.ToOrderResponse(order), nil
}
