package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stocksync/backend/models"
	"github.com/stocksync/backend/services/purchasing"
	"github.com/stocksync/backend/utils"
)

// SupplierRequest is the create/update supplier body
type SupplierRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	ContactInfo string `json:"contact_info" validate:"max=255"`
	Phone       string `json:"phone" validate:"max=30"`
	Email       string `json:"email" validate:"omitempty,email"`
	LeadTime    int    `json:"lead_time" validate:"gte=0"`
}

// SupplierService defines the supplier operations the handler needs
type SupplierService interface {
	List(ctx context.Context) ([]*purchasing.SupplierOverview, error)
	Get(ctx context.Context, id int64) (*models.Supplier, error)
	Create(ctx context.Context, supplier *models.Supplier) error
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id int64) error
	KPIs(ctx context.Context) (*purchasing.SupplierKPIs, error)
}

// SupplierHandler handles supplier HTTP requests
type SupplierHandler struct {
	suppliers SupplierService
	logger    *zap.Logger
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(suppliers SupplierService, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers, logger: logger}
}

// HandleList handles GET /api/v1/suppliers
func (h *SupplierHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.suppliers.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, overviews)
}

// HandleGet handles GET /api/v1/suppliers/{id}
func (h *SupplierHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	supplier, err := h.suppliers.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, supplier)
}

// HandleCreate handles POST /api/v1/suppliers
func (h *SupplierHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, r, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, r, err, h.logger)
		return
	}

	supplier := &models.Supplier{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Phone:       req.Phone,
		Email:       req.Email,
		LeadTime:    req.LeadTime,
	}
	if err := h.suppliers.Create(r.Context(), supplier); err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	_ = utils.WriteCreated(w, supplier)
}

// HandleUpdate handles PUT /api/v1/suppliers/{id}
func (h *SupplierHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, r, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, r, err, h.logger)
		return
	}

	supplier := &models.Supplier{
		ID:          id,
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Phone:       req.Phone,
		Email:       req.Email,
		LeadTime:    req.LeadTime,
	}
	if err := h.suppliers.Update(r.Context(), supplier); err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, supplier)
}

// HandleDelete handles DELETE /api/v1/suppliers/{id}
func (h *SupplierHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.suppliers.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	utils.WriteNoContent(w)
}

// HandleKPIs handles GET /api/v1/suppliers/kpis
func (h *SupplierHandler) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.suppliers.KPIs(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, kpis)
}

// pathID parses the {id} route parameter, writing a 400 on failure
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		_ = utils.WriteBadRequest(w, r, "Invalid id", map[string]interface{}{"id": raw})
		return 0, false
	}
	return id, true
}
