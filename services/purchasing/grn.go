package purchasing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stocksync/backend/models"
	"github.com/stocksync/backend/repositories"
	"github.com/stocksync/backend/services"
)

// CreateGRNInput carries the fields needed to record a goods received note
type CreateGRNInput struct {
	PurchaseOrderID int64
	Note            string
	Status          string
	ReceivedDate    time.Time
}

// GRNKPIs are the dashboard figures for the goods received overview
type GRNKPIs struct {
	TotalGRNs      int `json:"total_grns"`
	CompletedGRNs  int `json:"completed_grns"`
	IncompleteGRNs int `json:"incomplete_grns"`
}

// StickerData is the label payload printed for a received delivery
type StickerData struct {
	GRNNumber    string    `json:"grn_number"`
	ItemName     string    `json:"item_name"`
	SupplierName string    `json:"supplier_name"`
	ReceivedDate time.Time `json:"received_date"`
}

// GRNService records goods received notes against purchase orders
type GRNService struct {
	grns      repositories.GRNRepository
	orders    repositories.PurchaseOrderRepository
	suppliers repositories.SupplierRepository
	tx        repositories.TransactionManager
	logger    *zap.Logger
	now       func() time.Time
}

// NewGRNService creates a GRNService
func NewGRNService(
	grns repositories.GRNRepository,
	orders repositories.PurchaseOrderRepository,
	suppliers repositories.SupplierRepository,
	tx repositories.TransactionManager,
	logger *zap.Logger,
) *GRNService {
	return &GRNService{
		grns:      grns,
		orders:    orders,
		suppliers: suppliers,
		tx:        tx,
		logger:    logger,
		now:       time.Now,
	}
}

// Create records a GRN against an order that is still awaiting receipt.
// A COMPLETED note moves the order to RECEIVED; both writes commit as
// one transaction.
func (s *GRNService) Create(ctx context.Context, input CreateGRNInput) (*models.GRN, error) {
	if !models.ValidGRNStatus(input.Status) {
		return nil, services.NewDomainError(services.ErrorTypeValidation, "invalid input", nil).
			WithDetail("status", input.Status)
	}

	order, err := s.orders.GetByID(ctx, input.PurchaseOrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrOrderNotFound
		}
		return nil, services.WrapInternal("load order", err)
	}

	if order.Status == models.OrderReceived || order.Status == models.OrderCancelled {
		return nil, services.ErrOrderNotReceivable
	}

	grn := &models.GRN{
		Number:          newGRNNumber(),
		PurchaseOrderID: order.ID,
		Note:            input.Note,
		Status:          models.GRNStatus(input.Status),
		ReceivedDate:    input.ReceivedDate,
		CreatedAt:       s.now(),
	}

	err = s.tx.InTransaction(ctx, func(txCtx context.Context) error {
		if err := s.grns.Create(txCtx, grn); err != nil {
			return services.WrapInternal("create grn", err)
		}
		if grn.Status == models.GRNCompleted {
			if err := s.orders.UpdateStatus(txCtx, order.ID, models.OrderReceived); err != nil {
				return services.WrapInternal("mark order received", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("grn recorded",
		zap.String("grn_number", grn.Number),
		zap.Int64("order_id", order.ID),
		zap.String("status", string(grn.Status)))
	return grn, nil
}

// Get returns a single GRN by id
func (s *GRNService) Get(ctx context.Context, id int64) (*models.GRN, error) {
	grn, err := s.grns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrGRNNotFound
		}
		return nil, services.WrapInternal("load grn", err)
	}
	return grn, nil
}

// List returns all GRNs for the overview table
func (s *GRNService) List(ctx context.Context) ([]*models.GRN, error) {
	grns, err := s.grns.List(ctx)
	if err != nil {
		return nil, services.WrapInternal("list grns", err)
	}
	return grns, nil
}

// Sticker assembles the label payload for a received delivery
func (s *GRNService) Sticker(ctx context.Context, id int64) (*StickerData, error) {
	grn, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, grn.PurchaseOrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrOrderNotFound
		}
		return nil, services.WrapInternal("load order", err)
	}

	supplier, err := s.suppliers.GetByID(ctx, order.SupplierID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrSupplierNotFound
		}
		return nil, services.WrapInternal("load supplier", err)
	}

	return &StickerData{
		GRNNumber:    grn.Number,
		ItemName:     order.ItemName,
		SupplierName: supplier.Name,
		ReceivedDate: grn.ReceivedDate,
	}, nil
}

// KPIs computes the dashboard figures over all GRNs
func (s *GRNService) KPIs(ctx context.Context) (*GRNKPIs, error) {
	total, err := s.grns.Count(ctx)
	if err != nil {
		return nil, services.WrapInternal("count grns", err)
	}
	completed, err := s.grns.CountByStatus(ctx, models.GRNCompleted)
	if err != nil {
		return nil, services.WrapInternal("count completed grns", err)
	}
	incomplete, err := s.grns.CountByStatus(ctx, models.GRNIncomplete)
	if err != nil {
		return nil, services.WrapInternal("count incomplete grns", err)
	}

	return &GRNKPIs{
		TotalGRNs:      total,
		CompletedGRNs:  completed,
		IncompleteGRNs: incomplete,
	}, nil
}

// newGRNNumber generates a short unique note number
func newGRNNumber() string {
	id := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("GRN-%s", id)
}
