//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ammerola/fifo-ledger/internal/bootstrap"
	"github.com/ammerola/fifo-ledger/internal/core/domain"
	"github.com/ammerola/fifo-ledger/internal/core/ports"
	"github.com/ammerola/fifo-ledger/internal/handlers"
	"github.com/ammerola/fifo-ledger/internal/handlers/middleware"
	"github.com/ammerola/fifo-ledger/test/helpers"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Field   string          `json:"field"`
}

type LedgerE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
	t0        time.Time
}

func (s *LedgerE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())
	s.t0 = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *LedgerE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *LedgerE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

func (s *LedgerE2ESuite) TestPurchaseSellAndReport() {
	resp := s.makeRequest(http.MethodPost, "/events?sync=true", helpers.Purchase("PRD001", 100, "50", s.t0))
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodPost, "/events?sync=true", helpers.Purchase("PRD001", 50, "55", s.t0.Add(time.Hour)))
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// warm the status cache so the sale has something to invalidate
	var before domain.InventoryStatus
	s.decodeData(s.makeRequest(http.MethodGet, "/inventory/status/PRD001", nil), http.StatusOK, &before)
	s.Equal(int64(150), before.TotalQuantity)

	var outcome domain.EventOutcome
	s.decodeData(s.makeRequest(http.MethodPost, "/events?sync=true", helpers.Sale("PRD001", 120, s.t0.Add(2*time.Hour))),
		http.StatusCreated, &outcome)
	s.Require().NotNil(outcome.Sale)
	s.True(decimal.NewFromInt(6100).Equal(outcome.Sale.Sale.TotalCost))

	var after domain.InventoryStatus
	s.decodeData(s.makeRequest(http.MethodGet, "/inventory/status/PRD001", nil), http.StatusOK, &after)
	s.Equal(int64(30), after.TotalQuantity)
	s.True(decimal.NewFromInt(1650).Equal(after.TotalCost))
	s.True(decimal.NewFromInt(55).Equal(after.AverageCost))

	var ledger handlers.LedgerResponse
	s.decodeData(s.makeRequest(http.MethodGet, "/inventory/ledger?product_id=PRD001", nil), http.StatusOK, &ledger)
	s.Equal(3, ledger.Count)
	s.Equal(domain.EventTypeSale, ledger.Entries[0].EventType)
	s.Len(ledger.Entries[0].BatchDetails, 2)
}

func (s *LedgerE2ESuite) TestOversellIsRejected() {
	resp := s.makeRequest(http.MethodPost, "/events?sync=true", helpers.Purchase("PRD002", 40, "10", s.t0))
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodPost, "/events?sync=true", helpers.Sale("PRD002", 41, s.t0.Add(time.Minute)))
	var env envelope
	s.decode(resp, &env)
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.False(env.Success)
	s.Contains(env.Error, "available 40, requested 41")

	var status domain.InventoryStatus
	s.decodeData(s.makeRequest(http.MethodGet, "/inventory/status/PRD002", nil), http.StatusOK, &status)
	s.Equal(int64(40), status.TotalQuantity)
}

func (s *LedgerE2ESuite) TestMalformedEvent() {
	resp := s.makeRequest(http.MethodPost, "/events?sync=true", map[string]any{
		"product_id": "PRD003",
		"event_type": "purchase",
		"quantity":   0,
		"unit_price": "1.00",
	})
	var env envelope
	s.decode(resp, &env)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("quantity", env.Field)
}

func (s *LedgerE2ESuite) TestAsyncSubmitWithoutBroker() {
	resp := s.makeRequest(http.MethodPost, "/events", helpers.Sale("PRD001", 1, s.t0))
	resp.Body.Close()
	s.Equal(http.StatusServiceUnavailable, resp.StatusCode)
}

func (s *LedgerE2ESuite) TestSimulateExportAndReset() {
	var sim ports.SimulationReport
	s.decodeData(s.makeRequest(http.MethodPost, "/events/simulate", nil), http.StatusAccepted, &sim)
	s.Equal(10, sim.Total)
	s.Equal(10, sim.Successful)
	s.Zero(sim.Failed)
	s.Len(sim.Results, 10)

	var statuses []domain.InventoryStatus
	s.decodeData(s.makeRequest(http.MethodGet, "/inventory/status", nil), http.StatusOK, &statuses)
	s.Len(statuses, 2)

	resp := s.makeRequest(http.MethodGet, "/export/ledger.xlsx", nil)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("10", resp.Header.Get("X-Ledger-Entries"))
	s.True(bytes.HasPrefix(body, []byte("PK")), "xlsx is a zip archive")

	resp = s.makeRequest(http.MethodDelete, "/admin/data", nil)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var products []domain.Product
	s.decodeData(s.makeRequest(http.MethodGet, "/products", nil), http.StatusOK, &products)
	s.Empty(products)
}

func (s *LedgerE2ESuite) TestHealth() {
	resp, err := s.client.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.NotEmpty(resp.Header.Get("X-Request-ID"))
}

func (s *LedgerE2ESuite) startTestServer() *httptest.Server {
	cfg := helpers.LoadTestConfig()
	logger := helpers.TestLogger()

	cache := bootstrap.NewCache(s.testRedis.Client, cfg, logger)
	core, err := bootstrap.NewCore(s.testDB.Database, cfg, bootstrap.Options{Cache: cache}, logger)
	s.Require().NoError(err)

	routes := &handlers.Routes{
		Health:    handlers.NewHealthHandler(s.testDB.Database, cache, nil, cfg, logger),
		Inventory: handlers.NewInventoryHandler(core.Inventory, core.Ledger, core.Registry, logger),
		Events:    handlers.NewEventHandler(core.Gateway, logger),
		Export:    handlers.NewExportHandler(core.Exporter, nil, logger),
		Admin:     handlers.NewAdminHandler(core.Reset, logger),
	}

	mux := http.NewServeMux()
	routes.Register(mux)

	var handler http.Handler = mux
	handler = middleware.Compression(handler)
	handler = middleware.Logger(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.RequestID(handler)

	return httptest.NewServer(handler)
}

func (s *LedgerE2ESuite) makeRequest(method, path string, body any) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.Require().NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *LedgerE2ESuite) decode(resp *http.Response, v any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

func (s *LedgerE2ESuite) decodeData(resp *http.Response, wantStatus int, v any) {
	var env envelope
	s.decode(resp, &env)
	s.Require().Equal(wantStatus, resp.StatusCode, env.Error)
	s.Require().True(env.Success)
	s.Require().NoError(json.Unmarshal(env.Data, v))
}

func TestLedgerE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping e2e tests in short mode")
	}
	suite.Run(t, new(LedgerE2ESuite))
}
