// Package purchasing implements the stock purchasing workflows:
// suppliers, purchase orders, and goods received notes.
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

// SupplierOverview is a supplier with aggregates computed from its
// purchase orders, shaped for the supplier list table.
type SupplierOverview struct {
	models.Supplier
	TotalOrders     int     `json:"total_orders"`
	TotalSpent      float64 `json:"total_spent"`
	AvgLeadTimeDays float64 `json:"avg_lead_time_days"`
}

// SupplierKPIs are the roll-up figures for the supplier dashboard cards
type SupplierKPIs struct {
	TotalSuppliers  int     `json:"total_suppliers"`
	TotalSpent      float64 `json:"total_spent"`
	AvgLeadTimeDays float64 `json:"avg_lead_time_days"`
}

// SupplierService manages the supplier catalog
type SupplierService struct {
	suppliers repositories.SupplierRepository
	orders    repositories.PurchaseOrderRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewSupplierService creates a SupplierService
func NewSupplierService(
	suppliers repositories.SupplierRepository,
	orders repositories.PurchaseOrderRepository,
	logger *zap.Logger,
) *SupplierService {
	return &SupplierService{
		suppliers: suppliers,
		orders:    orders,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns all suppliers with their order aggregates. A supplier
// without orders reports its contractual lead time as the average.
func (s *SupplierService) List(ctx context.Context) ([]*SupplierOverview, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, services.WrapInternal("list suppliers", err)
	}

	overviews := make([]*SupplierOverview, 0, len(suppliers))
	for _, supplier := range suppliers {
		orders, err := s.orders.ListBySupplier(ctx, supplier.ID)
		if err != nil {
			return nil, services.WrapInternal("list supplier orders", err)
		}

		overview := &SupplierOverview{
			Supplier:        *supplier,
			TotalOrders:     len(orders),
			AvgLeadTimeDays: float64(supplier.LeadTime),
		}
		if len(orders) > 0 {
			var leadDays int
			for _, order := range orders {
				overview.TotalSpent += order.TotalAmount
				leadDays += order.LeadTimeDays()
			}
			overview.AvgLeadTimeDays = float64(leadDays) / float64(len(orders))
		}
		overviews = append(overviews, overview)
	}

	return overviews, nil
}

// Get returns a single supplier by id
func (s *SupplierService) Get(ctx context.Context, id int64) (*models.Supplier, error) {
	supplier, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrSupplierNotFound
		}
		return nil, services.WrapInternal("load supplier", err)
	}
	return supplier, nil
}

// Create adds a supplier to the catalog
func (s *SupplierService) Create(ctx context.Context, supplier *models.Supplier) error {
	now := s.now()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return services.WrapInternal("create supplier", err)
	}

	s.logger.Info("supplier created",
		zap.Int64("supplier_id", supplier.ID),
		zap.String("name", supplier.Name))
	return nil
}

// Update overwrites a supplier's mutable fields
func (s *SupplierService) Update(ctx context.Context, supplier *models.Supplier) error {
	supplier.UpdatedAt = s.now()

	if err := s.suppliers.Update(ctx, supplier); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrSupplierNotFound
		}
		return services.WrapInternal("update supplier", err)
	}

	s.logger.Info("supplier updated", zap.Int64("supplier_id", supplier.ID))
	return nil
}

// Delete removes a supplier from the catalog
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if err := s.suppliers.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrSupplierNotFound
		}
		return services.WrapInternal("delete supplier", err)
	}

	s.logger.Info("supplier deleted", zap.Int64("supplier_id", id))
	return nil
}

// KPIs rolls the per-supplier aggregates up into dashboard figures
func (s *SupplierService) KPIs(ctx context.Context) (*SupplierKPIs, error) {
	overviews, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	kpis := &SupplierKPIs{TotalSuppliers: len(overviews)}
	if len(overviews) == 0 {
		return kpis, nil
	}

	var leadSum float64
	for _, overview := range overviews {
		kpis.TotalSpent += overview.TotalSpent
		leadSum += overview.AvgLeadTimeDays
	}
	kpis.AvgLeadTimeDays = leadSum / float64(len(overviews))

	return kpis, nil
}
