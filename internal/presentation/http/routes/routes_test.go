package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibugroceries/karibu-api/internal/application/service"
	"github.com/karibugroceries/karibu-api/internal/config"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/internal/infrastructure/memory"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/handler"
	"github.com/karibugroceries/karibu-api/pkg/utils"
	"github.com/karibugroceries/karibu-api/pkg/validator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()

	cfg := &config.Config{
		App:     config.AppConfig{Name: "karibu-api", Env: "test"},
		Company: config.CompanyConfig{Name: "Karibu Groceries LTD", LowStockThresholdKg: 1000, DefaultBranch: "Maganjo"},
		JWT:     config.JWTConfig{Secret: "test-secret", ExpiryHours: time.Hour},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		},
		RateLimit: config.RateLimitConfig{Requests: 100, Duration: 1},
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	store := memory.NewStore()
	produceRepo := memory.NewProduceRepository(store, cfg.Company.LowStockThresholdKg)
	saleRepo := memory.NewSaleRepository(store)
	creditSaleRepo := memory.NewCreditSaleRepository(store)

	handlers := &Handlers{
		Auth:      handler.NewAuthHandler(service.NewAuthService(jwtManager, enum.BranchMaganjo)),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(produceRepo, saleRepo, creditSaleRepo, cfg.Company.LowStockThresholdKg)),
		Inventory: handler.NewInventoryHandler(service.NewInventoryService(produceRepo, cfg.Company.LowStockThresholdKg)),
		Sales:     handler.NewSalesHandler(service.NewSalesService(saleRepo, produceRepo)),
		Credit:    handler.NewCreditHandler(service.NewCreditService(creditSaleRepo)),
		Report:    handler.NewReportHandler(service.NewReportService(produceRepo, saleRepo, creditSaleRepo, cfg.Company.Name, cfg.Company.LowStockThresholdKg)),
	}

	return Setup(handlers, &Deps{JWTManager: jwtManager, Cfg: cfg})
}

func loginAs(t *testing.T, router *gin.Engine, name, role, branch string) string {
	t.Helper()

	body := `{"name":"` + name + `","role":"` + role + `"`
	if branch != "" {
		body += `,"branch":"` + branch + `"`
	}
	body += `}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardAccessibleToAllRoles(t *testing.T) {
	router := newTestRouter(t)

	for _, role := range []string{"manager", "sales_agent", "director"} {
		token := loginAs(t, router, "Test User", role, "Maganjo")
		w := doRequest(router, http.MethodGet, "/api/v1/dashboard", token)
		assert.Equal(t, http.StatusOK, w.Code, role)
	}
}

func TestInventoryForbiddenForDirector(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "Grace Auma", "director", "")

	w := doRequest(router, http.MethodGet, "/api/v1/inventory", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProcurementManagerOnly(t *testing.T) {
	router := newTestRouter(t)

	agentToken := loginAs(t, router, "Mary Nalubega", "sales_agent", "Maganjo")
	w := doRequest(router, http.MethodPost, "/api/v1/procurement", agentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReportsForbiddenForSalesAgent(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "Mary Nalubega", "sales_agent", "Matugga")

	w := doRequest(router, http.MethodGet, "/api/v1/reports/summary", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestExportDownloadHeaders(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "David Kato", "manager", "Maganjo")

	w := doRequest(router, http.MethodGet, "/api/v1/exports/inventory?format=csv", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "karibu_inventory_report_")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
}

func TestExportFullReportIsPDF(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "Grace Auma", "director", "")

	w := doRequest(router, http.MethodGet, "/api/v1/exports/full", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestExportUnknownReport(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "David Kato", "manager", "Maganjo")

	w := doRequest(router, http.MethodGet, "/api/v1/exports/payroll", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSalesAgentSeesOnlyOwnBranchSales(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "James Okello", "sales_agent", "Matugga")

	w := doRequest(router, http.MethodGet, "/api/v1/sales", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Items []struct {
				Branch string `json:"branch"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "Matugga", resp.Data.Items[0].Branch)
}
