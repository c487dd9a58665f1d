// internal/handlers/routes.go
package handlers

import "net/http"

const apiV1 = "/api/v1"

// Routes groups the handlers mounted on the API mux. Nil handlers are skipped.
type Routes struct {
	Health    *HealthHandler
	Inventory *InventoryHandler
	Events    *EventHandler
	Export    *ExportHandler
	Admin     *AdminHandler
}

// Register mounts every route using Go 1.22 method patterns.
func (rt *Routes) Register(mux *http.ServeMux) {
	if rt.Health != nil {
		mux.HandleFunc("GET /health", rt.Health.Health)
		mux.HandleFunc("GET /health/live", rt.Health.Liveness)
		mux.HandleFunc("GET /health/ready", rt.Health.Readiness)
	}

	if rt.Inventory != nil {
		mux.HandleFunc("GET "+apiV1+"/inventory/status", rt.Inventory.ListStatus)
		mux.HandleFunc("GET "+apiV1+"/inventory/status/{productId}", rt.Inventory.GetStatus)
		mux.HandleFunc("GET "+apiV1+"/inventory/ledger", rt.Inventory.GetLedger)
		mux.HandleFunc("GET "+apiV1+"/products", rt.Inventory.ListProducts)
		mux.HandleFunc("GET "+apiV1+"/products/{productId}", rt.Inventory.GetProduct)
	}

	if rt.Events != nil {
		mux.HandleFunc("POST "+apiV1+"/events", rt.Events.SubmitEvent)
		mux.HandleFunc("POST "+apiV1+"/events/simulate", rt.Events.Simulate)
	}

	if rt.Export != nil {
		mux.HandleFunc("GET "+apiV1+"/export/ledger.xlsx", rt.Export.DownloadLedger)
		mux.HandleFunc("POST "+apiV1+"/export/ledger", rt.Export.EnqueueExport)
	}

	if rt.Admin != nil {
		mux.HandleFunc("DELETE "+apiV1+"/admin/data", rt.Admin.ResetData)
	}
}
