package handlers

import (
	"context"
	"net/http"

	"logixy_crm/internal/models"
	"logixy_crm/internal/rates"
	"logixy_crm/internal/service"
	"logixy_crm/internal/table"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockClients struct {
	listResp  table.Result[models.Client]
	listErr   error
	lastQuery table.Query

	getResp models.Client
	getErr  error
	lastGet string

	saveErr  error
	lastSave models.Client
	saves    int
}

func (m *mockClients) ListClients(_ context.Context, q table.Query) (table.Result[models.Client], error) {
	m.lastQuery = q
	return m.listResp, m.listErr
}
func (m *mockClients) GetClient(_ context.Context, id string) (models.Client, error) {
	m.lastGet = id
	return m.getResp, m.getErr
}
func (m *mockClients) SaveClient(_ context.Context, c models.Client) (models.Client, error) {
	m.saves++
	m.lastSave = c
	if m.saveErr != nil {
		return models.Client{}, m.saveErr
	}
	if c.ID == "" {
		c.ID = "new-id"
	}
	return c, nil
}

type mockQuotations struct {
	listResp  table.Result[models.Quotation]
	listErr   error
	lastMonth string
	lastQuery table.Query

	months    []string
	monthsErr error

	getResp models.Quotation
	getErr  error

	saveErr  error
	lastSave models.Quotation
}

func (m *mockQuotations) ListQuotations(_ context.Context, month string, q table.Query) (table.Result[models.Quotation], error) {
	m.lastMonth = month
	m.lastQuery = q
	return m.listResp, m.listErr
}
func (m *mockQuotations) Months(context.Context) ([]string, error) {
	return m.months, m.monthsErr
}
func (m *mockQuotations) GetQuotation(context.Context, string) (models.Quotation, error) {
	return m.getResp, m.getErr
}
func (m *mockQuotations) SaveQuotation(_ context.Context, q models.Quotation) (models.Quotation, error) {
	m.lastSave = q
	if m.saveErr != nil {
		return models.Quotation{}, m.saveErr
	}
	q.Total = q.ComputeTotal()
	return q, nil
}

type mockRateSearch struct {
	resp  rates.Recommendation
	err   error
	calls int
	last  [3]string
}

func (m *mockRateSearch) SearchRates(_ context.Context, from, to, kind string) (rates.Recommendation, error) {
	m.calls++
	m.last = [3]string{from, to, kind}
	return m.resp, m.err
}

type mockDashboard struct {
	stats service.DashboardStats
	err   error
}

func (m *mockDashboard) Stats(context.Context) (service.DashboardStats, error) {
	return m.stats, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	h := NewHandler(s, nil, opts...)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
