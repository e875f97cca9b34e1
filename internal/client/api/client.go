package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/relocateme/internal/refdata"
	"github.com/iudanet/relocateme/internal/timeline"
	"github.com/iudanet/relocateme/pkg/api"
)

// ErrUnauthorized возвращается, когда сервер отвечает 401 (нет или истек токен)
var ErrUnauthorized = errors.New("unauthorized")

// APIError - ответ сервера со статусом вне 2xx
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Unwrap maps 401 responses onto ErrUnauthorized
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Me возвращает запись текущего пользователя
func (c *Client) Me(ctx context.Context, token string) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// RequestPasswordReset запрашивает код сброса пароля
func (c *Client) RequestPasswordReset(ctx context.Context, req api.PasswordResetRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/reset-password", "", req, &resp); err != nil {
		return nil, fmt.Errorf("reset password request failed: %w", err)
	}
	return &resp, nil
}

// CompletePasswordReset устанавливает новый пароль по коду сброса
func (c *Client) CompletePasswordReset(ctx context.Context, req api.CompletePasswordResetRequest) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/complete-password-reset", "", req, &resp); err != nil {
		return nil, fmt.Errorf("complete password reset request failed: %w", err)
	}
	return &resp, nil
}

// Timeline возвращает полный список шагов с отметками выполнения
func (c *Client) Timeline(ctx context.Context, token string) (*api.TimelineResponse, error) {
	var resp api.TimelineResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/timeline/full", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("timeline request failed: %w", err)
	}
	return &resp, nil
}

// TimelineByCategory возвращает шаги, сгруппированные по категориям, в порядке сервера
func (c *Client) TimelineByCategory(ctx context.Context, token string) (timeline.CategoryGroups, error) {
	var resp timeline.CategoryGroups
	if err := c.doRequest(ctx, http.MethodGet, "/api/timeline/by-category", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("timeline by category request failed: %w", err)
	}
	return resp, nil
}

// UpdateProgress отмечает шаг выполненным или снимает отметку
func (c *Client) UpdateProgress(ctx context.Context, token string, req api.UpdateProgressRequest) (*api.UpdateProgressResponse, error) {
	var resp api.UpdateProgressResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/timeline/update-progress", token, req, &resp); err != nil {
		return nil, fmt.Errorf("update progress request failed: %w", err)
	}
	return &resp, nil
}

// Dashboard возвращает сводку для текущего пользователя
func (c *Client) Dashboard(ctx context.Context, token string) (*api.DashboardOverview, error) {
	var resp api.DashboardOverview
	if err := c.doRequest(ctx, http.MethodGet, "/api/dashboard/overview", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("dashboard request failed: %w", err)
	}
	return &resp, nil
}

// Comparison возвращает сравнение Phoenix и Peak District
func (c *Client) Comparison(ctx context.Context, token string) (*refdata.Comparison, error) {
	var resp refdata.Comparison
	if err := c.doRequest(ctx, http.MethodGet, "/api/comparison/phoenix-to-peak-district", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("comparison request failed: %w", err)
	}
	return &resp, nil
}

// Location возвращает метрики локации по slug
func (c *Client) Location(ctx context.Context, slug string) (*refdata.Location, error) {
	var resp refdata.Location
	if err := c.doRequest(ctx, http.MethodGet, "/api/locations/"+url.PathEscape(slug), "", nil, &resp); err != nil {
		return nil, fmt.Errorf("location request failed: %w", err)
	}
	return &resp, nil
}

// JobListings возвращает вакансии; пустые фильтры не передаются
func (c *Client) JobListings(ctx context.Context, category, jobType string) ([]refdata.JobListing, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if jobType != "" {
		q.Set("job_type", jobType)
	}
	path := "/api/jobs/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp []refdata.JobListing
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("job listings request failed: %w", err)
	}
	return resp, nil
}

// VisaRequirements возвращает все визовые маршруты
func (c *Client) VisaRequirements(ctx context.Context) ([]refdata.VisaRequirement, error) {
	var resp []refdata.VisaRequirement
	if err := c.doRequest(ctx, http.MethodGet, "/api/visa/requirements", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("visa requirements request failed: %w", err)
	}
	return resp, nil
}

// VisaRequirement возвращает один визовый маршрут
func (c *Client) VisaRequirement(ctx context.Context, visaType string) (*refdata.VisaRequirement, error) {
	var resp refdata.VisaRequirement
	if err := c.doRequest(ctx, http.MethodGet, "/api/visa/requirements/"+url.PathEscape(visaType), "", nil, &resp); err != nil {
		return nil, fmt.Errorf("visa requirement request failed: %w", err)
	}
	return &resp, nil
}

// VisaChecklist возвращает чек-лист документов
func (c *Client) VisaChecklist(ctx context.Context) ([]refdata.ChecklistItem, error) {
	var resp []refdata.ChecklistItem
	if err := c.doRequest(ctx, http.MethodGet, "/api/visa/checklist", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("visa checklist request failed: %w", err)
	}
	return resp, nil
}

// Resources возвращает каталог полезных ссылок
func (c *Client) Resources(ctx context.Context) ([]refdata.ResourceCategory, error) {
	var resp []refdata.ResourceCategory
	if err := c.doRequest(ctx, http.MethodGet, "/api/resources/all", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("resources request failed: %w", err)
	}
	return resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос. token добавляется как Bearer, если не пустой.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Message
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
