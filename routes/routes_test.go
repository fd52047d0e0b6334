package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"freightdesk/handlers"
	"freightdesk/models"
	"freightdesk/repository/memrepo"
	"freightdesk/service"
	"freightdesk/storage"
)

type stubRenderer struct{}

func (stubRenderer) LorryReceiptHTML(models.LorryReceiptPDFData) (string, error) { return "lr", nil }
func (stubRenderer) InvoiceHTML(models.InvoicePDFData) (string, error)           { return "invoice", nil }
func (stubRenderer) LedgerHTML(models.LedgerPDFData) (string, error)             { return "ledger", nil }
func (stubRenderer) Print(_ context.Context, html string) ([]byte, error) {
	return []byte("%PDF-" + html), nil
}

type testServer struct {
	engine *gin.Engine
	lrs    *memrepo.LorryReceipts
	token  string
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	lrRepo := memrepo.NewLorryReceipts()
	invoices := memrepo.NewInvoices()
	clients := memrepo.NewClients()
	payments := memrepo.NewPayments()
	expenses := memrepo.NewExpenses()
	settings := memrepo.NewSettings()

	store := service.NewLorryReceiptStore(lrRepo, clients, log)
	binder := service.NewInvoiceBinder(invoices, clients, settings, store, log)
	ledger := service.NewLedgerService(clients, invoices, payments, expenses, lrRepo)
	docs := service.NewDocumentService(stubRenderer{}, storage.NewLocalArchive(t.TempDir()),
		store, binder, ledger, clients, settings, log)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	opts.Log = log
	engine := SetupRouter(opts, Handlers{
		Auth:         handlers.NewAuthHandler(string(hash), opts.JWTSecret, time.Hour),
		Clients:      &handlers.ClientHandler{Clients: service.NewClientService(clients, lrRepo, invoices, payments, log)},
		LorryReceipt: &handlers.LorryReceiptHandler{Store: store},
		Invoices:     &handlers.InvoiceHandler{Binder: binder},
		Payments:     &handlers.PaymentHandler{Payments: service.NewPaymentService(payments, clients, log)},
		Expenses:     &handlers.ExpenseHandler{Expenses: service.NewExpenseService(expenses)},
		Reports:      &handlers.ReportHandler{Reports: ledger},
		Settings:     &handlers.SettingsHandler{Settings: service.NewSettingsService(settings)},
		PDF:          &handlers.PDFHandler{Documents: docs},
	})
	return &testServer{engine: engine, lrs: lrRepo}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Field   string          `json:"field"`
	Data    json.RawMessage `json:"data"`
}

func (s *testServer) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec.Code, env
}

func (s *testServer) create(t *testing.T, path string, body any) map[string]any {
	t.Helper()
	code, env := s.do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, code, env.Message)
	var out map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func lrBody(consignor, consignee string) map[string]any {
	return map[string]any{
		"date":         "2025-08-20",
		"from":         "Chennai",
		"to":           "Bengaluru",
		"consignor_id": consignor,
		"consignee_id": consignee,
		"goods":        []map[string]any{{"product_name": "Steel Rods", "packages": 10, "charge_weight": "1200"}},
		"freight":      map[string]any{"basic_freight": "50000", "halting_charge": "1000", "extra_charge": "500"},
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestBillingFlow(t *testing.T) {
	s := newTestServer(t, Options{})
	client := s.create(t, "/api/clients", map[string]any{"name": "Acme Traders", "gstin": "33abcde1234f1z5"})
	clientID := client["id"].(string)
	assert.Equal(t, "33ABCDE1234F1Z5", client["gstin"])

	lr := s.create(t, "/api/lrs", lrBody(clientID, clientID))
	lrID := lr["id"].(string)
	assert.Equal(t, "1", lr["lr_number"])
	assert.Equal(t, "Booked", lr["status"])

	code, env := s.do(t, http.MethodPost, "/api/lrs/"+lrID+"/dispatch", map[string]any{
		"vehicle_number": "TN01AB1234", "driver_name": "Ravi",
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, "Status changed to Dispatched", env.Message)

	res := s.create(t, "/api/invoices", map[string]any{
		"lr_ids": []string{lrID},
		"date":   "2025-08-26",
		"rates":  map[string]any{"gst_rate": 5, "tds_rate": 2, "advance_received": "10000"},
	})
	invoice := res["invoice"].(map[string]any)
	assert.Equal(t, "INV-001", invoice["id"])
	assert.Equal(t, "54075", invoice["invoice_value"])
	assert.Equal(t, "43045", invoice["net_payable"])
	require.Len(t, res["updated_lrs"], 1)

	code, env = s.do(t, http.MethodDelete, "/api/lrs/"+lrID, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Success)

	s.create(t, "/api/payments", map[string]any{
		"client_id": clientID, "date": "2025-09-01", "amount": "43045", "mode": "Bank",
	})
	code, env = s.do(t, http.MethodGet, "/api/ledger?client_id="+clientID+"&fy=FY%202025-26", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	var ledger models.Ledger
	require.NoError(t, json.Unmarshal(env.Data, &ledger))
	assert.Len(t, ledger.Transactions, 2)
	assert.Equal(t, "11030", ledger.Totals.Outstanding.String())

	code, env = s.do(t, http.MethodDelete, "/api/invoices/INV-001", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	var released struct {
		UpdatedLRs []models.LorryReceipt `json:"updated_lrs"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &released))
	require.Len(t, released.UpdatedLRs, 1)
	assert.Equal(t, models.BillingUnbilled, released.UpdatedLRs[0].BillingStatus)
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(t, Options{})

	code, env := s.do(t, http.MethodGet, "/api/lrs/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)

	code, env = s.do(t, http.MethodPost, "/api/invoices", map[string]any{
		"lr_ids": []string{"x"}, "rates": map[string]any{"gst_rate": 120},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "gst_rate", env.Field)

	code, env = s.do(t, http.MethodPost, "/api/clients", map[string]any{"gstin": "33ABCDE1234F1Z5"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "name", env.Field)

	code, _ = s.do(t, http.MethodGet, "/api/lrs?fy=someday", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(t, http.MethodPost, "/api/lrs/missing/close", nil)
	assert.Equal(t, http.StatusNotFound, code, env.Message)
}

func TestInvalidTransitionIsConflict(t *testing.T) {
	s := newTestServer(t, Options{})
	clientID := s.create(t, "/api/clients", map[string]any{"name": "Acme", "gstin": "X"})["id"].(string)
	lrID := s.create(t, "/api/lrs", lrBody(clientID, clientID))["id"].(string)

	code, env := s.do(t, http.MethodPost, "/api/lrs/"+lrID+"/deliver", map[string]any{"proof_of_delivery": "signed"})
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Success)
}

func TestLRPDFResponse(t *testing.T) {
	s := newTestServer(t, Options{})
	clientID := s.create(t, "/api/clients", map[string]any{"name": "Acme", "gstin": "X"})["id"].(string)
	lrID := s.create(t, "/api/lrs", lrBody(clientID, clientID))["id"].(string)

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lrs/"+lrID+"/pdf", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["file"], "lr_1_")

	stored, err := s.lrs.GetByID(context.Background(), lrID)
	require.NoError(t, err)
	assert.Equal(t, body["location"], stored.PDFPath)

	rec = httptest.NewRecorder()
	s.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lrs/"+lrID+"/pdf?download=1", nil))
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-lr", rec.Body.String())
}

func TestAuth(t *testing.T) {
	s := newTestServer(t, Options{JWTSecret: "signing-key"})

	code, _ := s.do(t, http.MethodGet, "/api/clients", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(t, http.MethodPost, "/api/login", map[string]any{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := s.do(t, http.MethodPost, "/api/login", map[string]any{"password": "s3cret"})
	require.Equal(t, http.StatusOK, code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)

	s.token = login.Token
	code, _ = s.do(t, http.MethodGet, "/api/clients", nil)
	assert.Equal(t, http.StatusOK, code)

	s.token = login.Token + "x"
	code, _ = s.do(t, http.MethodGet, "/api/clients", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
