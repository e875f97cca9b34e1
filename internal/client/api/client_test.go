package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/relocateme/internal/refdata"
	"github.com/iudanet/relocateme/internal/timeline"
	"github.com/iudanet/relocateme/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Register проверяет успешную регистрацию
func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "newuser", req.Username)
		assert.Equal(t, "Password123", req.Password)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{UserID: "user-123", Username: "newuser", Message: "User registered successfully"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Register(context.Background(), api.RegisterRequest{Username: "newuser", Password: "Password123"})

	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.UserID)
	assert.Equal(t, "newuser", resp.Username)
}

// TestClient_Errors проверяет обработку ошибок сервера
func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		expectedErrMsg   string
		statusCode       int
		wantUnauthorized bool
	}{
		{
			name:           "User already exists",
			statusCode:     http.StatusConflict,
			body:           `{"error":"Conflict","message":"user already exists"}`,
			expectedErrMsg: "server error (409): user already exists",
		},
		{
			name:             "Unauthorized",
			statusCode:       http.StatusUnauthorized,
			body:             `{"error":"Unauthorized","message":"could not validate credentials"}`,
			expectedErrMsg:   "server error (401): could not validate credentials",
			wantUnauthorized: true,
		},
		{
			name:           "Plain text body",
			statusCode:     http.StatusInternalServerError,
			body:           "Internal Server Error",
			expectedErrMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.Login(context.Background(), api.LoginRequest{Username: "u", Password: "p"})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
			assert.Equal(t, tt.wantUnauthorized, errors.Is(err, ErrUnauthorized))

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
		})
	}
}

// TestClient_BearerEndpoints проверяет, что токен передается на защищенные endpoints
func TestClient_BearerEndpoints(t *testing.T) {
	const token = "access-token"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/auth/me":
			_ = json.NewEncoder(w).Encode(api.UserResponse{ID: "id-1", Username: "relocate_user", CompletedSteps: []int{1, 2}})
		case "/api/timeline/full":
			_ = json.NewEncoder(w).Encode(api.TimelineResponse{TotalSteps: 34, CompletedSteps: 2, CurrentPhase: "Planning"})
		case "/api/timeline/by-category":
			_, _ = w.Write([]byte(`{"Visa & Legal":{"steps":[],"total":4,"completed":0,"completion_percentage":0},` +
				`"Planning":{"steps":[],"total":3,"completed":3,"completion_percentage":100}}`))
		case "/api/timeline/update-progress":
			var req api.UpdateProgressRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.NotNil(t, req.StepID)
			_ = json.NewEncoder(w).Encode(api.UpdateProgressResponse{StepID: *req.StepID, Completed: req.Completed, CompletedSteps: 3})
		case "/api/dashboard/overview":
			_ = json.NewEncoder(w).Encode(api.DashboardOverview{User: "relocate_user"})
		case "/api/comparison/phoenix-to-peak-district":
			_ = json.NewEncoder(w).Encode(refdata.Comparison{RelocationTips: []string{"tip"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	ctx := context.Background()
	client := NewClient(server.URL)

	me, err := client.Me(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, me.CompletedSteps)

	full, err := client.Timeline(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 34, full.TotalSteps)

	groups, err := client.TimelineByCategory(ctx, token)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Visa & Legal", groups[0].Category, "server order is kept")
	assert.Equal(t, timeline.CategoryGroup{Category: "Planning", Steps: []timeline.AnnotatedStep{}, Total: 3, Completed: 3, CompletionPercentage: 100}, groups[1])

	step := 3
	upd, err := client.UpdateProgress(ctx, token, api.UpdateProgressRequest{StepID: &step, Completed: true})
	require.NoError(t, err)
	assert.Equal(t, 3, upd.StepID)
	assert.True(t, upd.Completed)

	dash, err := client.Dashboard(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "relocate_user", dash.User)

	cmp, err := client.Comparison(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []string{"tip"}, cmp.RelocationTips)
}

// TestClient_JobListingsQuery проверяет передачу фильтров
func TestClient_JobListingsQuery(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		jobType   string
		wantQuery string
	}{
		{name: "no filters", wantQuery: ""},
		{name: "category", category: "Technology", wantQuery: "category=Technology"},
		{name: "both", category: "Health care", jobType: "full-time", wantQuery: "category=Health+care&job_type=full-time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/jobs/listings", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				_ = json.NewEncoder(w).Encode([]refdata.JobListing{{ID: "job-1", Category: tt.category}})
			}))
			defer server.Close()

			jobs, err := NewClient(server.URL).JobListings(context.Background(), tt.category, tt.jobType)
			require.NoError(t, err)
			require.Len(t, jobs, 1)
		})
	}
}

// TestClient_PublicEndpoints проверяет endpoints справочных данных
func TestClient_PublicEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/locations/phoenix":
			_ = json.NewEncoder(w).Encode(refdata.Location{Name: "Phoenix, Arizona"})
		case "/api/visa/requirements":
			_ = json.NewEncoder(w).Encode([]refdata.VisaRequirement{{Type: "skilled-worker"}, {Type: "family"}})
		case "/api/visa/requirements/family":
			_ = json.NewEncoder(w).Encode(refdata.VisaRequirement{Type: "family"})
		case "/api/visa/checklist":
			_ = json.NewEncoder(w).Encode([]refdata.ChecklistItem{{Item: "Passport", Required: true}})
		case "/api/resources/all":
			_ = json.NewEncoder(w).Encode([]refdata.ResourceCategory{{Category: "Housing"}})
		case "/api/health":
			_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"})
		case "/api/auth/reset-password", "/api/auth/complete-password-reset":
			_ = json.NewEncoder(w).Encode(api.MessageResponse{Message: "ok"})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "Not Found", Message: "not found"})
		}
	}))
	defer server.Close()

	ctx := context.Background()
	client := NewClient(server.URL)

	loc, err := client.Location(ctx, "phoenix")
	require.NoError(t, err)
	assert.Equal(t, "Phoenix, Arizona", loc.Name)

	visas, err := client.VisaRequirements(ctx)
	require.NoError(t, err)
	assert.Len(t, visas, 2)

	visa, err := client.VisaRequirement(ctx, "family")
	require.NoError(t, err)
	assert.Equal(t, "family", visa.Type)

	_, err = client.VisaRequirement(ctx, "tourist")
	assert.ErrorContains(t, err, "server error (404): not found")

	checklist, err := client.VisaChecklist(ctx)
	require.NoError(t, err)
	assert.True(t, checklist[0].Required)

	res, err := client.Resources(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Housing", res[0].Category)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)

	_, err = client.RequestPasswordReset(ctx, api.PasswordResetRequest{Username: "relocate_user"})
	require.NoError(t, err)
	_, err = client.CompletePasswordReset(ctx, api.CompletePasswordResetRequest{Username: "relocate_user", ResetCode: "c", NewPassword: "NewPassword1"})
	require.NoError(t, err)
}

// TestClient_ContextCanceled проверяет отмену запроса через контекст
func TestClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL).Health(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
