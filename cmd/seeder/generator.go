// cmd/seeder/generator.go
package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

// GeneratorConfig shapes the random ledger history.
type GeneratorConfig struct {
	Products         int
	EventsPerProduct int
	Span             time.Duration
	Seed             uint64
}

// generateEvents returns a chronologically ordered purchase and sale history
// for cfg.Products products. Sales never exceed the stock bought before them.
func generateEvents(cfg GeneratorConfig, now time.Time) []domain.RawEvent {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	if cfg.EventsPerProduct < 1 {
		cfg.EventsPerProduct = 1
	}
	if cfg.Span <= 0 {
		cfg.Span = 30 * 24 * time.Hour
	}

	start := now.Add(-cfg.Span)
	step := cfg.Span / time.Duration(cfg.EventsPerProduct+1)

	events := make([]domain.RawEvent, 0, cfg.Products*cfg.EventsPerProduct)
	for p := 1; p <= cfg.Products; p++ {
		productID := fmt.Sprintf("SKU-%04d", p)
		basePrice := 5 + rng.IntN(95)
		stock := int64(0)

		for i := 0; i < cfg.EventsPerProduct; i++ {
			ts := start.Add(step * time.Duration(i+1)).Add(time.Duration(p) * time.Second)

			// The first event always buys so there is something to sell.
			if stock == 0 || i == 0 || rng.IntN(100) < 45 {
				qty := int64(10 + rng.IntN(190))
				cents := int64(basePrice*100) + int64(rng.IntN(basePrice*20+1)) - int64(basePrice*10)
				price := decimal.New(cents, -2)
				events = append(events, domain.RawEvent{
					ProductID: productID,
					EventType: string(domain.EventTypePurchase),
					Quantity:  json.Number(strconv.FormatInt(qty, 10)),
					UnitPrice: &price,
					Timestamp: ts.UTC().Format(time.RFC3339Nano),
				})
				stock += qty
				continue
			}

			qty := 1 + rng.Int64N(stock)
			events = append(events, domain.RawEvent{
				ProductID: productID,
				EventType: string(domain.EventTypeSale),
				Quantity:  json.Number(strconv.FormatInt(qty, 10)),
				Timestamp: ts.UTC().Format(time.RFC3339Nano),
			})
			stock -= qty
		}
	}

	return events
}
