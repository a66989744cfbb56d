package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ridehub/inventory-service/internal/invoice"
	"github.com/ridehub/inventory-service/internal/invoice/dto"
	"github.com/ridehub/inventory-service/internal/model"
	"github.com/ridehub/inventory-service/internal/notify"
)

type invoiceUseCase struct {
	repo      invoice.Repository
	suppliers invoice.SupplierResolver
	notifier  notify.Notifier
	logger    *zap.Logger
}

func NewInvoiceUseCase(repo invoice.Repository, suppliers invoice.SupplierResolver, notifier notify.Notifier, log *zap.Logger) invoice.UseCase {
	return &invoiceUseCase{
		repo:      repo,
		suppliers: suppliers,
		notifier:  notifier,
		logger:    log,
	}
}

// CreateInvoice freezes the pending items and totals into a new draft
// invoice. Nothing is persisted when a precondition fails.
func (uc *invoiceUseCase) CreateInvoice(ctx context.Context, input *dto.CreateInvoiceInput) (*model.Invoice, error) {
	if len(input.Items) == 0 {
		uc.notifier.Error("Please add at least one item")
		return nil, invoice.ErrNoItems
	}

	supplier, err := uc.suppliers.FindSupplierByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		// The original UI aborted this path without a word; surfacing it
		// keeps the outcome consistent with the empty-items check.
		uc.notifier.Error("Supplier not found")
		return nil, invoice.ErrSupplierNotFound
	}

	subtotal, tax, total := invoice.Totals(input.Items)

	items := make([]model.InvoiceItem, len(input.Items))
	copy(items, input.Items)

	now := time.Now()
	inv := &model.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: invoiceNumber(now),
		SupplierID:    supplier.ID,
		SupplierName:  supplier.Name,
		Date:          input.Date,
		DueDate:       input.DueDate,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Status:        model.InvoiceDraft,
		Notes:         input.Notes,
	}

	if err := uc.repo.Append(ctx, inv); err != nil {
		return nil, err
	}

	uc.logger.Info("invoice created",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("supplier", inv.SupplierName),
		zap.Float64("total", inv.Total),
	)
	uc.notifier.Success("Invoice created successfully")
	return inv, nil
}

// invoiceNumber derives the number from the low-order six digits of the
// creation timestamp in milliseconds. Collisions are theoretical for a
// single-actor system and not mitigated.
func invoiceNumber(t time.Time) string {
	digits := strconv.FormatInt(t.UnixMilli(), 10)
	if len(digits) > 6 {
		digits = digits[len(digits)-6:]
	}
	return fmt.Sprintf("INV-%s", digits)
}

func (uc *invoiceUseCase) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *invoiceUseCase) GetInvoice(ctx context.Context, id string) (*model.Invoice, error) {
	return uc.repo.FindByID(ctx, id)
}

// UpdateStatus overwrites the status with whatever the caller picked.
// There is no enforced transition graph; any of the four values may
// follow any other.
func (uc *invoiceUseCase) UpdateStatus(ctx context.Context, id string, status model.InvoiceStatus) (*model.Invoice, error) {
	inv, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		uc.notifier.Error("Invoice not found")
		return nil, nil
	}

	inv.Status = status
	if err := uc.repo.Save(ctx, inv); err != nil {
		return nil, err
	}

	uc.notifier.Success(fmt.Sprintf("Invoice marked as %s", status))
	return inv, nil
}
