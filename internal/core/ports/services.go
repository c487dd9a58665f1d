// internal/core/ports/services.go
package ports

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

// ProductRegistry maps product identifiers to product records.
type ProductRegistry interface {
	EnsureExists(ctx context.Context, productID, displayName string) (*domain.Product, error)
	Get(ctx context.Context, productID string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

// InventoryReader is the read side of the costing engine.
type InventoryReader interface {
	GetInventoryStatus(ctx context.Context, productID string) (*domain.InventoryStatus, error)
	GetAllInventoryStatus(ctx context.Context) ([]domain.InventoryStatus, error)
}

// LedgerEngine turns purchases and sales into batch mutations and sale records.
type LedgerEngine interface {
	InventoryReader
	RecordPurchase(ctx context.Context, productID string, quantity int64, unitPrice decimal.Decimal, ts time.Time) (*domain.Batch, error)
	RecordSale(ctx context.Context, productID string, quantity int64, ts time.Time) (*domain.SaleResult, error)
}

// LedgerReader produces the merged purchase and sale history.
type LedgerReader interface {
	Ledger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)
}

// StatusInvalidator drops cached reads after a mutation.
type StatusInvalidator interface {
	Invalidate(ctx context.Context, productIDs ...string)
}

// EventGateway validates inbound events and hands them to the engine.
type EventGateway interface {
	Handle(ctx context.Context, ev domain.Event) (*domain.EventOutcome, error)
	Process(ctx context.Context, raw domain.RawEvent) (*domain.EventOutcome, error)
	Publish(ctx context.Context, raw domain.RawEvent) (domain.Event, string, error)
	SimulateScenario(ctx context.Context) (*SimulationReport, error)
}

// SimulationReport tallies a demo scenario run, one result per event.
type SimulationReport struct {
	Total      int              `json:"total"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Results    []SimulatedEvent `json:"results"`
}

// SimulatedEvent is the result of submitting one scenario event. TaskID is
// set when the event was queued, Outcome when it was applied inline.
type SimulatedEvent struct {
	Index     int                  `json:"index"`
	EventType string               `json:"event_type"`
	ProductID string               `json:"product_id"`
	Success   bool                 `json:"success"`
	TaskID    string               `json:"task_id,omitempty"`
	Outcome   *domain.EventOutcome `json:"outcome,omitempty"`
	Error     string               `json:"error,omitempty"`
}

// TaskPublisher enqueues background work.
type TaskPublisher interface {
	PublishEvent(ctx context.Context, raw domain.RawEvent) (string, error)
	PublishExport(ctx context.Context, req ExportRequest) (string, error)
}

// ProductLocker serializes mutations per product across processes.
type ProductLocker interface {
	Lock(ctx context.Context, productID string) (unlock func(context.Context) error, err error)
}

// ResetResult reports rows deleted per table.
type ResetResult struct {
	Tables []TableCount `json:"tables"`
}

// TableCount is one table's deleted row count.
type TableCount struct {
	Table   string `json:"table"`
	Deleted int64  `json:"deleted"`
}

// ResetService wipes all ledger data.
type ResetService interface {
	ResetAll(ctx context.Context) (*ResetResult, error)
}

// ExportRequest describes a workbook export.
type ExportRequest struct {
	ProductID   string `json:"product_id,omitempty"`
	RequestedBy string `json:"requested_by,omitempty"`
}

// ExportResult describes a stored export.
type ExportResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	Entries  int    `json:"entries"`
}

// Exporter renders ledger workbooks.
type Exporter interface {
	BuildWorkbook(ctx context.Context, req ExportRequest) ([]byte, int, error)
	ExportToStorage(ctx context.Context, req ExportRequest) (*ExportResult, error)
}

// ObjectStorage stores export files.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
}

// Auditor verifies stored quantities against consumption history.
type Auditor interface {
	Run(ctx context.Context) ([]domain.BatchViolation, error)
}
