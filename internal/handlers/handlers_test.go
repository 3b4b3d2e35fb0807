package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"impactio/internal/authz"
	"impactio/internal/dashboard"
	"impactio/internal/middleware"
	"impactio/internal/models"
	"impactio/internal/pdf"
	"impactio/internal/repositories"
	"impactio/internal/services"
)

type fakeLeads struct {
	leads []models.Lead
	err   error
}

func (f *fakeLeads) ListLeads(context.Context) ([]models.Lead, error) { return f.leads, f.err }

type fakeConvs struct{ n int }

func (f *fakeConvs) ListConversations(context.Context) ([]models.Conversation, error) {
	out := make([]models.Conversation, f.n)
	return out, nil
}

type fakeUsers struct{ user *models.User }

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.user != nil && strings.EqualFold(strings.TrimSpace(email), f.user.Email) {
		return f.user, nil
	}
	return nil, repositories.ErrUserNotFound
}

type fakeNotifier struct {
	got *models.Metrics
	err error
}

func (f *fakeNotifier) SendDigest(_ *models.Session, m models.Metrics) error {
	f.got = &m
	return f.err
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func strPtr(s string) *string { return &s }

func testLeads() []models.Lead {
	at := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	return []models.Lead{
		{ID: "1", Name: "Ana Ruiz", Email: "ana@acme.io", Company: strPtr("Acme"), Source: models.SourceWebsite, Status: models.StatusNew, Priority: models.PriorityHigh, CreatedAt: at},
		{ID: "2", Name: "Bo Chen", Email: "bo@globex.com", Source: models.SourceLinkedIn, Status: models.StatusQualified, Priority: models.PriorityLow, CreatedAt: at},
		{ID: "3", Name: "Cy Park", Email: "cy@initech.com", Source: models.SourceWebsite, Status: models.StatusProposal, Priority: "urgent", CreatedAt: at},
	}
}

type testEnv struct {
	router   *gin.Engine
	token    string
	notifier *fakeNotifier
}

func newEnv(t *testing.T, leads *fakeLeads, notifier services.Notifier) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: 7, Email: "owner@impactio.one", Name: "Owner", PasswordHash: string(hash)}

	tokens := authz.NewTokenManager("test-secret", time.Hour)
	auth := services.NewAuthService(&fakeUsers{user: user}, tokens)
	dash := services.NewDashboardService(leads, &fakeConvs{n: 2}, services.NewMemoryFilterStore(time.Hour), dashboard.DefaultDateFormat, time.Second)
	exports := services.NewExportService(dash, pdf.NewReportGenerator(""), nil)

	dashboardHandler := NewDashboardHandler(dash)
	r := gin.New()
	r.POST("/login", NewAuthHandler(auth, false).Login)
	r.POST("/logout", NewAuthHandler(auth, false).Logout)
	r.GET("/healthz", NewHealthHandler(fakePinger{}).Healthz)
	r.Use(middleware.AuthMiddleware(auth, "/"))
	exportHandler := NewExportHandler(dashboardHandler, exports, notifier)
	r.GET("/dashboard", dashboardHandler.Overview)
	r.GET("/dashboard/metrics", dashboardHandler.Metrics)
	r.GET("/dashboard/charts", dashboardHandler.Charts)
	r.GET("/dashboard/leads", dashboardHandler.Leads)
	r.GET("/dashboard/filters", dashboardHandler.GetFilters)
	r.PUT("/dashboard/filters", dashboardHandler.PutFilters)
	r.DELETE("/dashboard/filters", dashboardHandler.ResetFilters)
	r.GET("/dashboard/leads/export", exportHandler.Download)
	r.POST("/dashboard/leads/export/email", exportHandler.Email)
	r.POST("/dashboard/digest", exportHandler.Digest)

	token, _, err := tokens.Issue(user)
	require.NoError(t, err)
	env := &testEnv{router: r, token: token}
	if fn, ok := notifier.(*fakeNotifier); ok {
		env.notifier = fn
	}
	return env
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestLogin(t *testing.T) {
	env := newEnv(t, &fakeLeads{leads: testLeads()}, nil)
	env.token = ""

	w := env.do(http.MethodPost, "/login", `{"email":"owner@impactio.one","password":"s3cret!"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.NotContains(t, resp.User, "password_hash")
	assert.NotContains(t, w.Body.String(), "$2a$")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// cookie сам по себе открывает дашборд
	req := httptest.NewRequest(http.MethodGet, "/dashboard/metrics", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_Rejected(t *testing.T) {
	env := newEnv(t, &fakeLeads{}, nil)
	env.token = ""

	w := env.do(http.MethodPost, "/login", `{"email":"owner@impactio.one","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid email or password"}`, w.Body.String())

	w = env.do(http.MethodPost, "/login", `{"email":"owner@impactio.one"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout(t *testing.T) {
	env := newEnv(t, &fakeLeads{}, nil)
	w := env.do(http.MethodPost, "/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestDashboard_RequiresSession(t *testing.T) {
	env := newEnv(t, &fakeLeads{leads: testLeads()}, nil)
	env.token = ""
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/dashboard", "").Code)
}

func TestOverview(t *testing.T) {
	env := newEnv(t, &fakeLeads{leads: testLeads()}, nil)

	w := env.do(http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view models.DashboardView
	decode(t, w, &view)
	assert.Equal(t, 7, view.User.UserID)
	assert.Equal(t, models.Metrics{TotalLeads: 3, NewLeads: 1, TotalConversations: 2, ConversionRate: 67}, view.Metrics)
	require.Len(t, view.Cards, 4)
	assert.Equal(t, "Conversion Rate", view.Cards[3].Title)
	assert.Equal(t, "67%", view.Cards[3].Value)
	assert.Len(t, view.Table.Rows, 3)
	assert.Equal(t, "-", view.Table.Rows[1].Company)
	assert.Equal(t, string(dashboard.ToneNeutral), view.Table.Rows[2].Priority.Tone)
}

func TestMetricsAndCharts(t *testing.T) {
	env := newEnv(t, &fakeLeads{leads: testLeads()}, nil)

	w := env.do(http.MethodGet, "/dashboard/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	var m struct {
		Metrics models.Metrics      `json:"metrics"`
		Cards   []models.MetricCard `json:"cards"`
	}
	decode(t, w, &m)
	assert.Equal(t, 3, m.Metrics.TotalLeads)
	assert.Len(t, m.Cards, 4)

	w = env.do(http.MethodGet, "/dashboard/charts", "")
	require.Equal(t, http.StatusOK, w.Code)
	var charts models.Charts
	decode(t, w, &charts)
	require.Len(t, charts.BySource, 2)
	assert.Equal(t, "Website", charts.BySource[0].Label)
	assert.Equal(t, 2, charts.BySource[0].Count)
}

func TestLeads_FailedSourceStillRenders(t *testing.T) {
	env := newEnv(t, &fakeLeads{err: errors.New("db down")}, nil)

	w := env.do(http.MethodGet, "/dashboard/leads", "")
	require.Equal(t, http.StatusOK, w.Code)
	var table models.LeadTable
	decode(t, w, &table)
	assert.Equal(t, 0, table.Total)
	assert.Equal(t, models.EmptyNoLeads, table.EmptyState)
	assert.NotNil(t, table.Rows)
}

func TestLeads_FiltersAreRemembered(t *testing.T) {
	env := newEnv(t, &fakeLeads{leads: testLeads()}, nil)

	w := env.do(http.MethodGet, "/dashboard/leads?source=website&search=cy", "")
	require.Equal(t, http.StatusOK, w.Code)
	var table models.LeadTable
	decode(t, w, &table)
	assert.Equal(t, 1, table.Matched)
	assert.Equal(t, models.FilterCriteria{Search: "cy", Status: "all", Source: "website"}, table.Filters)
	assert.Len(t, table.Options.Sources, 6)

	// без параметров берутся сохранённые выборы, заданный параметр меняет только себя
	w = env.do(http.MethodGet, "/dashboard/leads?search=", "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &table)
	assert.Equal(t, models.FilterCriteria{Search: "", Status: "all", Source: "website"}, table.Filters)
	assert.Equal(t, 2, table.Matched)

	w = env.do(http.MethodGet, "/dashboard/leads?status=closed", "")
	decode(t, w, &table)
	assert.Equal(t, 0, table.Matched)
	assert.Equal(t, models.EmptyNoMatches, table.EmptyState)
	assert.NotEmpty(t, table.Message)
}

func TestFiltersEndpoints(t *testing.T) {
	env := newEnv(t, &fakeLeads{leads: testLeads()}, nil)

	w := env.do(http.MethodGet, "/dashboard/filters", "")
	require.Equal(t, http.StatusOK, w.Code)
	var state models.FilterState
	decode(t, w, &state)
	assert.Equal(t, models.FilterCriteria{Search: "", Status: "all", Source: "all"}, state.Filters)
	assert.Equal(t, dashboard.FilterOptions(), state.Options)
	require.NotEmpty(t, state.Options.Statuses)
	assert.Equal(t, "all", state.Options.Statuses[0].Value)

	w = env.do(http.MethodPut, "/dashboard/filters", `{"search":"acme","status":" new "}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"search":"acme","status":"new","source":"all"}`, w.Body.String())

	w = env.do(http.MethodGet, "/dashboard/leads", "")
	var table models.LeadTable
	decode(t, w, &table)
	assert.Equal(t, 1, table.Matched)

	w = env.do(http.MethodPut, "/dashboard/filters", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodDelete, "/dashboard/filters", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = env.do(http.MethodGet, "/dashboard/filters", "")
	decode(t, w, &state)
	assert.Equal(t, models.FilterCriteria{Search: "", Status: "all", Source: "all"}, state.Filters)
}

func TestExportDownload(t *testing.T) {
	env := newEnv(t, &fakeLeads{leads: testLeads()}, nil)

	w := env.do(http.MethodGet, "/dashboard/leads/export?source=website", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="leads.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "2", w.Header().Get("X-Export-Rows"))
	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 3)

	w = env.do(http.MethodGet, "/dashboard/leads/export?format=pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))

	w = env.do(http.MethodGet, "/dashboard/leads/export?format=docx", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"unknown export format"}`, w.Body.String())
}

func TestExportEmail_Disabled(t *testing.T) {
	env := newEnv(t, &fakeLeads{leads: testLeads()}, nil)
	w := env.do(http.MethodPost, "/dashboard/leads/export/email", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDigest(t *testing.T) {
	env := newEnv(t, &fakeLeads{leads: testLeads()}, &fakeNotifier{})
	w := env.do(http.MethodPost, "/dashboard/digest", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	require.NotNil(t, env.notifier.got)
	assert.Equal(t, 3, env.notifier.got.TotalLeads)

	env = newEnv(t, &fakeLeads{leads: testLeads()}, &fakeNotifier{err: errors.New("telegram 502")})
	w = env.do(http.MethodPost, "/dashboard/digest", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	env = newEnv(t, &fakeLeads{leads: testLeads()}, nil)
	w = env.do(http.MethodPost, "/dashboard/digest", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ok", NewHealthHandler(fakePinger{}).Healthz)
	r.GET("/down", NewHealthHandler(fakePinger{err: errors.New("refused")}).Healthz)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/down", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
