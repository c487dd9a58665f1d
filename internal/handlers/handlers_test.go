package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
	"github.com/ammerola/fifo-ledger/internal/core/services"
	"github.com/ammerola/fifo-ledger/internal/handlers"
	"github.com/ammerola/fifo-ledger/internal/pkg/config"
	"github.com/ammerola/fifo-ledger/test/helpers"
	"github.com/ammerola/fifo-ledger/test/mocks"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Field   string          `json:"field"`
}

type testServer struct {
	inventory *mocks.MockInventoryReader
	ledger    *mocks.MockLedgerReader
	registry  *mocks.MockProductRegistry
	gateway   *mocks.MockEventGateway
	exporter  *mocks.MockExporter
	publisher *mocks.MockTaskPublisher
	reset     *mocks.MockResetService
	mux       *http.ServeMux
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := helpers.TestLogger()

	s := &testServer{
		inventory: mocks.NewMockInventoryReader(ctrl),
		ledger:    mocks.NewMockLedgerReader(ctrl),
		registry:  mocks.NewMockProductRegistry(ctrl),
		gateway:   mocks.NewMockEventGateway(ctrl),
		exporter:  mocks.NewMockExporter(ctrl),
		publisher: mocks.NewMockTaskPublisher(ctrl),
		reset:     mocks.NewMockResetService(ctrl),
		mux:       http.NewServeMux(),
	}

	routes := &handlers.Routes{
		Inventory: handlers.NewInventoryHandler(s.inventory, s.ledger, s.registry, logger),
		Events:    handlers.NewEventHandler(s.gateway, logger),
		Export:    handlers.NewExportHandler(s.exporter, s.publisher, logger),
		Admin:     handlers.NewAdminHandler(s.reset, logger),
	}
	routes.Register(s.mux)
	return s
}

func (s *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestInventoryHandler_Status(t *testing.T) {
	status := &domain.InventoryStatus{
		ProductID:     "PRD001",
		TotalQuantity: 80,
		TotalCost:     decimal.RequireFromString("4400"),
		AverageCost:   decimal.RequireFromString("55"),
		Batches:       []domain.BatchSummary{{ID: 2, Quantity: 80, UnitPrice: decimal.RequireFromString("55")}},
	}

	tests := []struct {
		name       string
		target     string
		setupMocks func(*testServer)
		wantStatus int
		check      func(*testing.T, envelope)
	}{
		{
			name:   "one_product",
			target: "/api/v1/inventory/status/PRD001",
			setupMocks: func(s *testServer) {
				s.inventory.EXPECT().GetInventoryStatus(gomock.Any(), "PRD001").Return(status, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, env envelope) {
				var got domain.InventoryStatus
				require.NoError(t, json.Unmarshal(env.Data, &got))
				assert.Equal(t, int64(80), got.TotalQuantity)
				assert.True(t, got.AverageCost.Equal(decimal.NewFromInt(55)))
			},
		},
		{
			name:   "all_products",
			target: "/api/v1/inventory/status",
			setupMocks: func(s *testServer) {
				s.inventory.EXPECT().GetAllInventoryStatus(gomock.Any()).Return([]domain.InventoryStatus{*status}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, env envelope) {
				var got []domain.InventoryStatus
				require.NoError(t, json.Unmarshal(env.Data, &got))
				assert.Len(t, got, 1)
			},
		},
		{
			name:   "storage_failure_hides_detail",
			target: "/api/v1/inventory/status",
			setupMocks: func(s *testServer) {
				s.inventory.EXPECT().GetAllInventoryStatus(gomock.Any()).Return(nil, errors.New("pool exhausted"))
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, env envelope) {
				assert.NotContains(t, env.Error, "pool exhausted")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setupMocks(s)

			rec, env := s.do(t, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus < 400, env.Success)
			if tt.check != nil {
				tt.check(t, env)
			}
		})
	}
}

func TestInventoryHandler_Ledger(t *testing.T) {
	s := newTestServer(t)
	price := decimal.RequireFromString("50")
	remaining := int64(0)

	s.ledger.EXPECT().Ledger(gomock.Any(), domain.LedgerFilter{ProductID: "PRD001"}).Return([]domain.LedgerEntry{
		{ID: 1, ProductID: "PRD001", EventType: domain.EventTypePurchase, Quantity: 100, UnitPrice: &price, RemainingQuantity: &remaining},
	}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/inventory/ledger?product_id=PRD001", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got handlers.LedgerResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, domain.EventTypePurchase, got.Entries[0].EventType)
}

func TestInventoryHandler_EmptyLedgerIsAnArray(t *testing.T) {
	s := newTestServer(t)
	s.ledger.EXPECT().Ledger(gomock.Any(), domain.LedgerFilter{}).Return(nil, nil)

	_, env := s.do(t, http.MethodGet, "/api/v1/inventory/ledger", "")

	assert.JSONEq(t, `{"entries":[],"count":0}`, string(env.Data))
}

func TestInventoryHandler_Products(t *testing.T) {
	s := newTestServer(t)
	s.registry.EXPECT().List(gomock.Any()).Return([]domain.Product{{ID: "PRD001", Name: "PRD001"}}, nil)
	s.registry.EXPECT().Get(gomock.Any(), "NOPE").Return(nil, domain.ErrProductNotFound)

	rec, env := s.do(t, http.MethodGet, "/api/v1/products", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"product_id":"PRD001"`)

	rec, env = s.do(t, http.MethodGet, "/api/v1/products/NOPE", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestEventHandler_SubmitEvent(t *testing.T) {
	saleRaw := domain.RawEvent{ProductID: "PRD001", EventType: "sale", Quantity: "150"}
	saleBody := `{"product_id":"PRD001","event_type":"sale","quantity":150}`

	tests := []struct {
		name       string
		target     string
		body       string
		setupMocks func(*testServer)
		wantStatus int
		wantField  string
		wantData   string
	}{
		{
			name:   "queued",
			target: "/api/v1/events",
			body:   saleBody,
			setupMocks: func(s *testServer) {
				s.gateway.EXPECT().Publish(gomock.Any(), saleRaw).
					Return(domain.SaleEvent{ProductID: "PRD001", Quantity: 150, Timestamp: time.Now()}, "task-1", nil)
			},
			wantStatus: http.StatusAccepted,
			wantData:   `{"task_id":"task-1","event_type":"sale","product_id":"PRD001","quantity":150}`,
		},
		{
			name:   "processed_inline",
			target: "/api/v1/events?sync=true",
			body:   saleBody,
			setupMocks: func(s *testServer) {
				s.gateway.EXPECT().Process(gomock.Any(), saleRaw).Return(&domain.EventOutcome{
					EventType: domain.EventTypeSale,
					ProductID: "PRD001",
					Sale:      &domain.SaleResult{Sale: &domain.Sale{ID: 1, Quantity: 150, TotalCost: decimal.NewFromInt(7625)}},
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "insufficient_inventory",
			target: "/api/v1/events?sync=true",
			body:   saleBody,
			setupMocks: func(s *testServer) {
				s.gateway.EXPECT().Process(gomock.Any(), saleRaw).
					Return(nil, domain.NewInsufficientInventoryError("PRD001", 100, 150))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "concurrency_conflict",
			target: "/api/v1/events?sync=true",
			body:   saleBody,
			setupMocks: func(s *testServer) {
				s.gateway.EXPECT().Process(gomock.Any(), saleRaw).Return(nil, domain.ErrConcurrencyConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "validation_error_names_field",
			target: "/api/v1/events",
			body:   saleBody,
			setupMocks: func(s *testServer) {
				s.gateway.EXPECT().Publish(gomock.Any(), saleRaw).
					Return(nil, "", &domain.ValidationError{Field: "quantity", Message: "must be greater than zero"})
			},
			wantStatus: http.StatusBadRequest,
			wantField:  "quantity",
		},
		{
			name:   "unsupported_type",
			target: "/api/v1/events",
			body:   saleBody,
			setupMocks: func(s *testServer) {
				s.gateway.EXPECT().Publish(gomock.Any(), saleRaw).Return(nil, "", domain.ErrUnsupportedEventType)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "no_publisher",
			target: "/api/v1/events",
			body:   saleBody,
			setupMocks: func(s *testServer) {
				s.gateway.EXPECT().Publish(gomock.Any(), saleRaw).Return(nil, "", services.ErrNoPublisher)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "malformed_body",
			target:     "/api/v1/events",
			body:       `{"product_id":`,
			setupMocks: func(*testServer) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setupMocks(s)

			rec, env := s.do(t, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus < 400, env.Success)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, env.Field)
			}
			if tt.wantData != "" {
				assert.JSONEq(t, tt.wantData, string(env.Data))
			}
		})
	}
}

func TestEventHandler_Simulate(t *testing.T) {
	s := newTestServer(t)
	s.gateway.EXPECT().SimulateScenario(gomock.Any()).Return(&ports.SimulationReport{
		Total:      2,
		Successful: 1,
		Failed:     1,
		Results: []ports.SimulatedEvent{
			{Index: 1, EventType: "purchase", ProductID: "PRD001", Success: true, TaskID: "t-1"},
			{Index: 2, EventType: "sale", ProductID: "PRD001", Error: "broker down"},
		},
	}, nil)

	rec, env := s.do(t, http.MethodPost, "/api/v1/events/simulate", "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{
		"total": 2, "successful": 1, "failed": 1,
		"results": [
			{"index": 1, "event_type": "purchase", "product_id": "PRD001", "success": true, "task_id": "t-1"},
			{"index": 2, "event_type": "sale", "product_id": "PRD001", "success": false, "error": "broker down"}
		]
	}`, string(env.Data))
}

func TestAdminHandler_ResetData(t *testing.T) {
	s := newTestServer(t)
	s.reset.EXPECT().ResetAll(gomock.Any()).Return(&ports.ResetResult{
		Tables: []ports.TableCount{{Table: "sales", Deleted: 3}},
	}, nil)

	rec, env := s.do(t, http.MethodDelete, "/api/v1/admin/data", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tables":[{"table":"sales","deleted":3}]}`, string(env.Data))

	rec, _ = s.do(t, http.MethodGet, "/api/v1/admin/data", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestExportHandler(t *testing.T) {
	t.Run("download", func(t *testing.T) {
		s := newTestServer(t)
		s.exporter.EXPECT().BuildWorkbook(gomock.Any(), ports.ExportRequest{ProductID: "PRD001"}).
			Return([]byte("PK-fake"), 4, nil)

		rec, _ := s.do(t, http.MethodGet, "/api/v1/export/ledger.xlsx?product_id=PRD001", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "ledger_PRD001_")
		assert.Equal(t, "4", rec.Header().Get("X-Ledger-Entries"))
		assert.True(t, bytes.Equal([]byte("PK-fake"), rec.Body.Bytes()))
	})

	t.Run("enqueue", func(t *testing.T) {
		s := newTestServer(t)
		s.publisher.EXPECT().PublishExport(gomock.Any(), ports.ExportRequest{ProductID: "PRD002", RequestedBy: "ops"}).
			Return("task-9", nil)

		rec, env := s.do(t, http.MethodPost, "/api/v1/export/ledger", `{"product_id":" PRD002 ","requested_by":"ops"}`)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"task_id":"task-9"}`, string(env.Data))
	})

	t.Run("enqueue_empty_body", func(t *testing.T) {
		s := newTestServer(t)
		s.publisher.EXPECT().PublishExport(gomock.Any(), ports.ExportRequest{}).Return("task-10", nil)

		rec, _ := s.do(t, http.MethodPost, "/api/v1/export/ledger", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("enqueue_without_publisher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mux := http.NewServeMux()
		(&handlers.Routes{
			Export: handlers.NewExportHandler(mocks.NewMockExporter(ctrl), nil, helpers.TestLogger()),
		}).Register(mux)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/export/ledger", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Name: "fifo-ledger", Version: "1.2.3", Environment: "test"}}

	tests := []struct {
		name       string
		target     string
		setupMocks func(*mocks.MockDatabase, *mocks.MockCacheRepository)
		wantStatus int
	}{
		{
			name:   "healthy",
			target: "/health",
			setupMocks: func(db *mocks.MockDatabase, cache *mocks.MockCacheRepository) {
				db.EXPECT().Ping(gomock.Any()).Return(nil)
				db.EXPECT().Health(gomock.Any()).Return(map[string]any{"total_conns": 4})
				cache.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "degraded_when_redis_down",
			target: "/health",
			setupMocks: func(db *mocks.MockDatabase, cache *mocks.MockCacheRepository) {
				db.EXPECT().Ping(gomock.Any()).Return(nil)
				db.EXPECT().Health(gomock.Any()).Return(map[string]any{})
				cache.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "not_ready_without_database",
			target: "/health/ready",
			setupMocks: func(db *mocks.MockDatabase, cache *mocks.MockCacheRepository) {
				db.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp"))
				cache.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "live",
			target:     "/health/live",
			setupMocks: func(*mocks.MockDatabase, *mocks.MockCacheRepository) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := mocks.NewMockDatabase(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)
			tt.setupMocks(db, cache)

			mux := http.NewServeMux()
			(&handlers.Routes{
				Health: handlers.NewHealthHandler(db, cache, nil, cfg, helpers.TestLogger()),
			}).Register(mux)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
		})
	}
}
