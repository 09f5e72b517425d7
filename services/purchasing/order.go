package purchasing

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/stocksync/backend/models"
	"github.com/stocksync/backend/repositories"
	"github.com/stocksync/backend/services"
)

// CreateOrderInput carries the fields needed to place a purchase order.
// Username identifies the authenticated operator placing it.
type CreateOrderInput struct {
	ItemName             string
	SupplierID           int64
	WarehouseID          int64
	Username             string
	TotalAmount          float64
	ExpectedDeliveryDate time.Time
}

// Option is a name+id pair for frontend pickers
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OrderKPIs are the dashboard figures for the purchase order overview
type OrderKPIs struct {
	TotalOrders   int     `json:"total_orders"`
	PendingOrders int     `json:"pending_orders"`
	ShippedOrders int     `json:"shipped_orders"`
	TotalValue    float64 `json:"total_value"`
}

// OrderService manages purchase orders
type OrderService struct {
	orders     repositories.PurchaseOrderRepository
	suppliers  repositories.SupplierRepository
	warehouses repositories.WarehouseRepository
	users      repositories.UserRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewOrderService creates an OrderService
func NewOrderService(
	orders repositories.PurchaseOrderRepository,
	suppliers repositories.SupplierRepository,
	warehouses repositories.WarehouseRepository,
	users repositories.UserRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:     orders,
		suppliers:  suppliers,
		warehouses: warehouses,
		users:      users,
		logger:     logger,
		now:        time.Now,
	}
}

// Create places a purchase order. Supplier, warehouse, and the creating
// user are resolved before anything is written.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*models.PurchaseOrder, error) {
	if _, err := s.suppliers.GetByID(ctx, input.SupplierID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrSupplierNotFound
		}
		return nil, services.WrapInternal("load supplier", err)
	}

	if _, err := s.warehouses.GetByID(ctx, input.WarehouseID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrWarehouseNotFound
		}
		return nil, services.WrapInternal("load warehouse", err)
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, services.WrapInternal("load user", err)
	}

	now := s.now()
	order := &models.PurchaseOrder{
		ItemName:             input.ItemName,
		SupplierID:           input.SupplierID,
		WarehouseID:          input.WarehouseID,
		CreatedByUserID:      user.ID,
		Status:               models.OrderPending,
		TotalAmount:          input.TotalAmount,
		OrderDate:            now,
		ExpectedDeliveryDate: input.ExpectedDeliveryDate,
		CreatedAt:            now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, services.WrapInternal("create order", err)
	}

	s.logger.Info("purchase order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("supplier_id", order.SupplierID),
		zap.String("created_by", input.Username))
	return order, nil
}

// Get returns a single order by id
func (s *OrderService) Get(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrOrderNotFound
		}
		return nil, services.WrapInternal("load order", err)
	}
	return order, nil
}

// List returns all purchase orders for the overview table
func (s *OrderService) List(ctx context.Context) ([]*models.PurchaseOrder, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, services.WrapInternal("list orders", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to a new lifecycle state
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !models.ValidOrderStatus(status) {
		return services.NewDomainError(services.ErrorTypeValidation, "invalid input", nil).
			WithDetail("status", status)
	}

	if err := s.orders.UpdateStatus(ctx, id, models.OrderStatus(status)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrOrderNotFound
		}
		return services.WrapInternal("update order status", err)
	}

	s.logger.Info("order status updated",
		zap.Int64("order_id", id), zap.String("status", status))
	return nil
}

// SupplierOptions returns supplier name+id pairs for the order form
func (s *OrderService) SupplierOptions(ctx context.Context) ([]Option, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, services.WrapInternal("list suppliers", err)
	}
	options := make([]Option, 0, len(suppliers))
	for _, supplier := range suppliers {
		options = append(options, Option{ID: supplier.ID, Name: supplier.Name})
	}
	return options, nil
}

// WarehouseOptions returns warehouse name+id pairs for the order form
func (s *OrderService) WarehouseOptions(ctx context.Context) ([]Option, error) {
	warehouses, err := s.warehouses.List(ctx)
	if err != nil {
		return nil, services.WrapInternal("list warehouses", err)
	}
	options := make([]Option, 0, len(warehouses))
	for _, warehouse := range warehouses {
		options = append(options, Option{ID: warehouse.ID, Name: warehouse.Name})
	}
	return options, nil
}

// KPIs computes the dashboard figures over all orders
func (s *OrderService) KPIs(ctx context.Context) (*OrderKPIs, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, services.WrapInternal("list orders", err)
	}

	kpis := &OrderKPIs{TotalOrders: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case models.OrderPending:
			kpis.PendingOrders++
		case models.OrderShipped:
			kpis.ShippedOrders++
		}
		kpis.TotalValue += order.TotalAmount
	}
	return kpis, nil
}
