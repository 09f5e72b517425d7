package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/stocksync/backend/middleware"
	"github.com/stocksync/backend/models"
	"github.com/stocksync/backend/services/purchasing"
	"github.com/stocksync/backend/utils"
)

// CreateOrderRequest is the create purchase order body
type CreateOrderRequest struct {
	ItemName             string    `json:"item_name" validate:"required,max=100"`
	SupplierID           int64     `json:"supplier_id" validate:"required,gt=0"`
	WarehouseID          int64     `json:"warehouse_id" validate:"required,gt=0"`
	TotalAmount          float64   `json:"total_amount" validate:"gte=0"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date" validate:"required"`
}

// UpdateOrderStatusRequest is the status update body
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderService defines the purchase order operations the handler needs
type OrderService interface {
	Create(ctx context.Context, input purchasing.CreateOrderInput) (*models.PurchaseOrder, error)
	Get(ctx context.Context, id int64) (*models.PurchaseOrder, error)
	List(ctx context.Context) ([]*models.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	SupplierOptions(ctx context.Context) ([]purchasing.Option, error)
	WarehouseOptions(ctx context.Context) ([]purchasing.Option, error)
	KPIs(ctx context.Context) (*purchasing.OrderKPIs, error)
}

// OrderHandler handles purchase order HTTP requests
type OrderHandler struct {
	orders OrderService
	logger *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, logger: logger}
}

// HandleCreate handles POST /api/v1/purchase-orders
func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsernameFromContext(r.Context())
	if username == "" {
		_ = utils.WriteUnauthorized(w, r, "")
		return
	}

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, r, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, r, err, h.logger)
		return
	}

	order, err := h.orders.Create(r.Context(), purchasing.CreateOrderInput{
		ItemName:             req.ItemName,
		SupplierID:           req.SupplierID,
		WarehouseID:          req.WarehouseID,
		Username:             username,
		TotalAmount:          req.TotalAmount,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
	})
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	_ = utils.WriteCreated(w, order)
}

// HandleList handles GET /api/v1/purchase-orders
func (h *OrderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, orders)
}

// HandleGet handles GET /api/v1/purchase-orders/{id}
func (h *OrderHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, order)
}

// HandleUpdateStatus handles PATCH /api/v1/purchase-orders/{id}/status
func (h *OrderHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, r, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, r, err, h.logger)
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), id, req.Status); err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	utils.WriteNoContent(w)
}

// HandleSupplierOptions handles GET /api/v1/purchase-orders/options/suppliers
func (h *OrderHandler) HandleSupplierOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.orders.SupplierOptions(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, options)
}

// HandleWarehouseOptions handles GET /api/v1/purchase-orders/options/warehouses
func (h *OrderHandler) HandleWarehouseOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.orders.WarehouseOptions(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, options)
}

// HandleKPIs handles GET /api/v1/purchase-orders/kpis
func (h *OrderHandler) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.orders.KPIs(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, kpis)
}
