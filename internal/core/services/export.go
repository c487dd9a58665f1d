// internal/core/services/export.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
)

const (
	// XLSXContentType is the MIME type of exported workbooks.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	ledgerSheet = "Ledger"
	statusSheet = "Status"
	moneyFormat = "#,##0.0000"
)

// ErrStorageDisabled is returned by ExportToStorage when no object storage
// is configured.
var ErrStorageDisabled = errors.New("export storage is not configured")

var (
	ledgerHeaders = []string{
		"Timestamp", "Type", "Product", "Entry ID", "Quantity",
		"Unit Price", "Remaining", "Total Cost", "Unit Cost", "Batches Used",
	}
	statusHeaders = []string{
		"Product", "Total Quantity", "Total Cost", "Average Cost", "Open Batches",
	}
)

// ExportService renders the ledger and inventory status as a workbook.
type ExportService struct {
	ledger    ports.LedgerReader
	inventory ports.InventoryReader
	storage   ports.ObjectStorage
	keyPrefix string
	now       func() time.Time
	logger    *slog.Logger
}

var _ ports.Exporter = (*ExportService)(nil)

// NewExportService creates an export service. storage may be nil, in which
// case only in-memory workbooks are available.
func NewExportService(ledger ports.LedgerReader, inventory ports.InventoryReader, storage ports.ObjectStorage, keyPrefix string, logger *slog.Logger) *ExportService {
	if keyPrefix == "" {
		keyPrefix = "exports"
	}
	return &ExportService{
		ledger:    ledger,
		inventory: inventory,
		storage:   storage,
		keyPrefix: strings.TrimSuffix(keyPrefix, "/"),
		now:       time.Now,
		logger:    logger.With(slog.String("service", "export")),
	}
}

// BuildWorkbook returns the XLSX bytes and the number of ledger entries written.
func (s *ExportService) BuildWorkbook(ctx context.Context, req ports.ExportRequest) ([]byte, int, error) {
	entries, err := s.ledger.Ledger(ctx, domain.LedgerFilter{ProductID: req.ProductID})
	if err != nil {
		return nil, 0, err
	}

	var statuses []domain.InventoryStatus
	if req.ProductID != "" {
		status, err := s.inventory.GetInventoryStatus(ctx, req.ProductID)
		if err != nil {
			return nil, 0, err
		}
		statuses = []domain.InventoryStatus{*status}
	} else {
		statuses, err = s.inventory.GetAllInventoryStatus(ctx)
		if err != nil {
			return nil, 0, err
		}
	}

	file := xlsx.NewFile()

	if err := writeLedgerSheet(file, entries); err != nil {
		return nil, 0, err
	}
	if err := writeStatusSheet(file, statuses); err != nil {
		return nil, 0, err
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, 0, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.DebugContext(ctx, "workbook built",
		slog.String("product_id", req.ProductID),
		slog.Int("entries", len(entries)),
		slog.Int("bytes", buffer.Len()))

	return buffer.Bytes(), len(entries), nil
}

// ExportToStorage builds the workbook and uploads it under a dated key.
func (s *ExportService) ExportToStorage(ctx context.Context, req ports.ExportRequest) (*ports.ExportResult, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	data, count, err := s.BuildWorkbook(ctx, req)
	if err != nil {
		return nil, err
	}

	key := s.objectKey(req)
	location, err := s.storage.Upload(ctx, key, bytes.NewReader(data), XLSXContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}

	s.logger.InfoContext(ctx, "ledger exported",
		slog.String("key", key),
		slog.String("location", location),
		slog.String("requested_by", req.RequestedBy),
		slog.Int("entries", count))

	return &ports.ExportResult{Key: key, Location: location, Entries: count}, nil
}

func (s *ExportService) objectKey(req ports.ExportRequest) string {
	scope := "all"
	if req.ProductID != "" {
		scope = req.ProductID
	}
	return fmt.Sprintf("%s/%s/ledger-%s-%s.xlsx",
		s.keyPrefix, s.now().UTC().Format("2006/01/02"), scope, uuid.NewString())
}

func writeLedgerSheet(file *xlsx.File, entries []domain.LedgerEntry) error {
	sheet, err := file.AddSheet(ledgerSheet)
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}
	writeHeader(sheet, ledgerHeaders)

	for _, e := range entries {
		row := sheet.AddRow()
		row.AddCell().SetString(e.Timestamp.UTC().Format(time.RFC3339))
		row.AddCell().SetString(string(e.EventType))
		row.AddCell().SetString(e.ProductID)
		row.AddCell().SetInt64(e.ID)
		row.AddCell().SetInt64(e.Quantity)
		setMoney(row.AddCell(), e.UnitPrice)
		if e.RemainingQuantity != nil {
			row.AddCell().SetInt64(*e.RemainingQuantity)
		} else {
			row.AddCell()
		}
		setMoney(row.AddCell(), e.TotalCost)
		setMoney(row.AddCell(), e.UnitCost)
		row.AddCell().SetString(describeDetails(e.BatchDetails))
	}

	sheet.SetColWidth(1, len(ledgerHeaders), 16)
	return nil
}

func writeStatusSheet(file *xlsx.File, statuses []domain.InventoryStatus) error {
	sheet, err := file.AddSheet(statusSheet)
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}
	writeHeader(sheet, statusHeaders)

	for _, st := range statuses {
		open := 0
		for _, b := range st.Batches {
			if b.Quantity > 0 {
				open++
			}
		}

		row := sheet.AddRow()
		row.AddCell().SetString(st.ProductID)
		row.AddCell().SetInt64(st.TotalQuantity)
		setMoney(row.AddCell(), &st.TotalCost)
		setMoney(row.AddCell(), &st.AverageCost)
		row.AddCell().SetInt(open)
	}

	sheet.SetColWidth(1, len(statusHeaders), 16)
	return nil
}

func writeHeader(sheet *xlsx.Sheet, headers []string) {
	row := sheet.AddRow()
	for _, h := range headers {
		cell := row.AddCell()
		cell.Value = h
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}
}

func setMoney(cell *xlsx.Cell, d *decimal.Decimal) {
	if d == nil {
		return
	}
	cell.SetFloatWithFormat(d.InexactFloat64(), moneyFormat)
}

// describeDetails renders consumption as "batch#qty@price" pairs.
func describeDetails(details []domain.ConsumptionDetail) string {
	parts := make([]string, 0, len(details))
	for _, d := range details {
		parts = append(parts, fmt.Sprintf("#%d:%d@%s", d.BatchID, d.QuantityUsed, d.UnitPrice.StringFixed(domain.CostScale)))
	}
	return strings.Join(parts, ", ")
}
