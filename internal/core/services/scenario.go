// internal/core/services/scenario.go
package services

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

type scenarioStep struct {
	productID string
	eventType domain.EventType
	quantity  int64
	unitPrice string
	ago       time.Duration
}

var demoSteps = []scenarioStep{
	{"PRD001", domain.EventTypePurchase, 100, "50.00", 240 * time.Hour},
	{"PRD001", domain.EventTypePurchase, 50, "55.00", 120 * time.Hour},
	{"PRD002", domain.EventTypePurchase, 200, "30.00", 192 * time.Hour},
	{"PRD001", domain.EventTypeSale, 60, "", 72 * time.Hour},
	{"PRD001", domain.EventTypeSale, 30, "", 24 * time.Hour},
	{"PRD002", domain.EventTypeSale, 100, "", 48 * time.Hour},
	{"PRD001", domain.EventTypePurchase, 75, "60.00", 12 * time.Hour},
	{"PRD002", domain.EventTypePurchase, 150, "32.00", 7*time.Hour + 12*time.Minute},
	{"PRD001", domain.EventTypeSale, 50, "", 2*time.Hour + 24*time.Minute},
	{"PRD002", domain.EventTypeSale, 80, "", 0},
}

// DemoScenario returns two products' purchases and sales spread over the
// ten days before now, in submission order.
func DemoScenario(now time.Time) []domain.RawEvent {
	events := make([]domain.RawEvent, 0, len(demoSteps))
	for _, s := range demoSteps {
		raw := domain.RawEvent{
			ProductID: s.productID,
			EventType: string(s.eventType),
			Quantity:  json.Number(strconv.FormatInt(s.quantity, 10)),
			Timestamp: now.Add(-s.ago).UTC().Format(time.RFC3339Nano),
		}
		if s.unitPrice != "" {
			price := decimal.RequireFromString(s.unitPrice)
			raw.UnitPrice = &price
		}
		events = append(events, raw)
	}
	return events
}
