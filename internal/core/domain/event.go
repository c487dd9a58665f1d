// internal/core/domain/event.go
package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EventType identifies an inbound inventory event.
type EventType string

const (
	EventTypePurchase EventType = "purchase"
	EventTypeSale     EventType = "sale"
)

// RawEvent is the wire shape of an inventory event as producers send it.
type RawEvent struct {
	ProductID string           `json:"product_id"`
	EventType string           `json:"event_type"`
	Quantity  json.Number      `json:"quantity,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Timestamp string           `json:"timestamp,omitempty"`
}

// Event is a validated inbound event. Only PurchaseEvent and SaleEvent
// implement it.
type Event interface {
	Type() EventType
	Product() string
	Units() int64
	OccurredAt() time.Time
	isEvent()
}

// PurchaseEvent adds a priced batch.
type PurchaseEvent struct {
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Timestamp time.Time
}

func (e PurchaseEvent) Type() EventType       { return EventTypePurchase }
func (e PurchaseEvent) Product() string       { return e.ProductID }
func (e PurchaseEvent) Units() int64          { return e.Quantity }
func (e PurchaseEvent) OccurredAt() time.Time { return e.Timestamp }
func (PurchaseEvent) isEvent()                {}

// SaleEvent consumes stock oldest batch first.
type SaleEvent struct {
	ProductID string
	Quantity  int64
	Timestamp time.Time
}

func (e SaleEvent) Type() EventType       { return EventTypeSale }
func (e SaleEvent) Product() string       { return e.ProductID }
func (e SaleEvent) Units() int64          { return e.Quantity }
func (e SaleEvent) OccurredAt() time.Time { return e.Timestamp }
func (SaleEvent) isEvent()                {}

// DecodeEvent unmarshals and validates a JSON event payload.
func DecodeEvent(data []byte, now time.Time) (Event, error) {
	var raw RawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Field: "payload", Message: err.Error()}
	}
	return ParseEvent(raw, now)
}

// ParseEvent validates a raw event and returns its typed variant.
// A missing timestamp defaults to now. Timestamps are kept at
// TimestampPrecision.
func ParseEvent(raw RawEvent, now time.Time) (Event, error) {
	productID := strings.TrimSpace(raw.ProductID)
	if productID == "" {
		return nil, &ValidationError{Field: "product_id", Message: "is required"}
	}

	eventType := strings.TrimSpace(raw.EventType)
	if eventType == "" {
		return nil, &ValidationError{Field: "event_type", Message: "is required"}
	}

	quantity, err := parseQuantity(raw.Quantity)
	if err != nil {
		return nil, err
	}

	ts := StoredTime(now)
	if raw.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw.Timestamp)
		if err != nil {
			return nil, &ValidationError{Field: "timestamp", Message: "must be an ISO-8601 date-time"}
		}
		ts = StoredTime(parsed)
	}

	switch EventType(eventType) {
	case EventTypePurchase:
		if raw.UnitPrice == nil {
			return nil, &ValidationError{Field: "unit_price", Message: "is required for purchase events"}
		}
		if msg := checkUnitPrice(*raw.UnitPrice); msg != "" {
			return nil, &ValidationError{Field: "unit_price", Message: msg}
		}
		return PurchaseEvent{
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: *raw.UnitPrice,
			Timestamp: ts,
		}, nil
	case EventTypeSale:
		return SaleEvent{
			ProductID: productID,
			Quantity:  quantity,
			Timestamp: ts,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEventType, eventType)
	}
}

// ToRaw converts a typed event back to its wire shape.
func ToRaw(ev Event) RawEvent {
	raw := RawEvent{
		ProductID: ev.Product(),
		EventType: string(ev.Type()),
		Quantity:  json.Number(fmt.Sprintf("%d", ev.Units())),
	}
	if !ev.OccurredAt().IsZero() {
		raw.Timestamp = ev.OccurredAt().UTC().Format(time.RFC3339Nano)
	}
	if p, ok := ev.(PurchaseEvent); ok {
		price := p.UnitPrice
		raw.UnitPrice = &price
	}
	return raw
}

func parseQuantity(n json.Number) (int64, error) {
	if n == "" {
		return 0, &ValidationError{Field: "quantity", Message: "is required"}
	}
	q, err := n.Int64()
	if err != nil {
		return 0, &ValidationError{Field: "quantity", Message: "must be an integer"}
	}
	if q <= 0 {
		return 0, &ValidationError{Field: "quantity", Message: "must be greater than zero"}
	}
	return q, nil
}

// EventOutcome reports what handling an event changed.
type EventOutcome struct {
	EventType EventType   `json:"event_type"`
	ProductID string      `json:"product_id"`
	Batch     *Batch      `json:"batch,omitempty"`
	Sale      *SaleResult `json:"sale,omitempty"`
}
