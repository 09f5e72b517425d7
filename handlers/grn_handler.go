package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/stocksync/backend/models"
	"github.com/stocksync/backend/services/purchasing"
	"github.com/stocksync/backend/utils"
)

// CreateGRNRequest is the create goods received note body
type CreateGRNRequest struct {
	PurchaseOrderID int64     `json:"purchase_order_id" validate:"required,gt=0"`
	Note            string    `json:"note" validate:"max=500"`
	Status          string    `json:"status" validate:"required,oneof=COMPLETED INCOMPLETE"`
	ReceivedDate    time.Time `json:"received_date" validate:"required"`
}

// GRNService defines the goods received note operations the handler needs
type GRNService interface {
	Create(ctx context.Context, input purchasing.CreateGRNInput) (*models.GRN, error)
	Get(ctx context.Context, id int64) (*models.GRN, error)
	List(ctx context.Context) ([]*models.GRN, error)
	Sticker(ctx context.Context, id int64) (*purchasing.StickerData, error)
	KPIs(ctx context.Context) (*purchasing.GRNKPIs, error)
}

// GRNHandler handles goods received note HTTP requests
type GRNHandler struct {
	grns   GRNService
	logger *zap.Logger
}

// NewGRNHandler creates a new GRNHandler
func NewGRNHandler(grns GRNService, logger *zap.Logger) *GRNHandler {
	return &GRNHandler{grns: grns, logger: logger}
}

// HandleCreate handles POST /api/v1/grns
func (h *GRNHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateGRNRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, r, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, r, err, h.logger)
		return
	}

	grn, err := h.grns.Create(r.Context(), purchasing.CreateGRNInput{
		PurchaseOrderID: req.PurchaseOrderID,
		Note:            req.Note,
		Status:          req.Status,
		ReceivedDate:    req.ReceivedDate,
	})
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	_ = utils.WriteCreated(w, grn)
}

// HandleList handles GET /api/v1/grns
func (h *GRNHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	grns, err := h.grns.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, grns)
}

// HandleGet handles GET /api/v1/grns/{id}
func (h *GRNHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	grn, err := h.grns.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, grn)
}

// HandleSticker handles GET /api/v1/grns/{id}/sticker
func (h *GRNHandler) HandleSticker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	sticker, err := h.grns.Sticker(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, sticker)
}

// HandleKPIs handles GET /api/v1/grns/kpis
func (h *GRNHandler) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.grns.KPIs(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, kpis)
}
