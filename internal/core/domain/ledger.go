// internal/core/domain/ledger.go
package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one row of the transaction ledger: either a purchase
// (one batch) or a sale with its consumption breakdown.
type LedgerEntry struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"product_id"`
	EventType EventType `json:"event_type"`
	Quantity  int64     `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`

	// purchase
	UnitPrice         *decimal.Decimal `json:"unit_price,omitempty"`
	RemainingQuantity *int64           `json:"remaining_quantity,omitempty"`

	// sale
	TotalCost    *decimal.Decimal    `json:"total_cost,omitempty"`
	UnitCost     *decimal.Decimal    `json:"unit_cost,omitempty"`
	BatchDetails []ConsumptionDetail `json:"batch_details,omitempty"`
}

// LedgerFilter narrows the ledger view. The zero value selects everything.
type LedgerFilter struct {
	ProductID string
}

// SaleWithDetails pairs a persisted sale with the batches it drew from.
type SaleWithDetails struct {
	Sale    Sale
	Details []ConsumptionDetail
}

// PurchaseEntry projects a batch into the ledger.
func PurchaseEntry(b Batch) LedgerEntry {
	price := b.UnitPrice
	remaining := b.RemainingQuantity
	return LedgerEntry{
		ID:                b.ID,
		ProductID:         b.ProductID,
		EventType:         EventTypePurchase,
		Quantity:          b.Quantity,
		Timestamp:         b.PurchaseTimestamp,
		UnitPrice:         &price,
		RemainingQuantity: &remaining,
	}
}

// SaleEntry projects a sale into the ledger.
func SaleEntry(s SaleWithDetails) LedgerEntry {
	total := s.Sale.TotalCost
	unit := s.Sale.UnitCost()
	details := s.Details
	if details == nil {
		details = []ConsumptionDetail{}
	}
	return LedgerEntry{
		ID:           s.Sale.ID,
		ProductID:    s.Sale.ProductID,
		EventType:    EventTypeSale,
		Quantity:     s.Sale.Quantity,
		Timestamp:    s.Sale.SaleTimestamp,
		TotalCost:    &total,
		UnitCost:     &unit,
		BatchDetails: details,
	}
}

// BuildLedger merges batches and sales into one list, newest first.
// Entries sharing a timestamp list sales before purchases, then higher ids first.
func BuildLedger(batches []Batch, sales []SaleWithDetails) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(batches)+len(sales))
	for _, b := range batches {
		entries = append(entries, PurchaseEntry(b))
	}
	for _, s := range sales {
		entries = append(entries, SaleEntry(s))
	}

	slices.SortStableFunc(entries, func(a, b LedgerEntry) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		if a.EventType != b.EventType {
			if a.EventType == EventTypeSale {
				return -1
			}
			return 1
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})

	return entries
}
