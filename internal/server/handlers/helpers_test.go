package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/relocateme/internal/crypto"
	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/refdata"
	"github.com/iudanet/relocateme/internal/server/jwt"
	"github.com/iudanet/relocateme/internal/server/services"
	"github.com/iudanet/relocateme/internal/server/storage/sqlstore"
	"github.com/iudanet/relocateme/internal/timeline"
)

const (
	testUsername = "relocate_user"
	testPassword = "SecurePass2025!"
)

func init() {
	crypto.PasswordCost = bcrypt.MinCost
}

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// testEnv связывает handlers с реальными сервисами поверх in-memory SQLite
type testEnv struct {
	store      *sqlstore.Storage
	auth       *services.AuthService
	progress   *services.ProgressService
	comparison *services.ComparisonService
	ref        *refdata.Reference
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	logger := setupTestLogger()

	store, err := sqlstore.New(ctx, sqlstore.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ref := refdata.New()
	env := &testEnv{
		store: store,
		ref:   ref,
		auth: services.NewAuthService(logger, store, store,
			jwt.NewService("test-secret", 30*time.Minute),
			crypto.StaticResetCode(crypto.LegacyResetCode), time.Hour),
		progress:   services.NewProgressService(logger, store, timeline.DefaultCatalog(), timeline.AcceptAnyStep),
		comparison: services.NewComparisonService(ref, store),
	}

	_, err = env.auth.EnsureUser(ctx, testUsername, "relocate@example.com", testPassword)
	require.NoError(t, err)

	return env
}

// user возвращает актуальную запись тестового пользователя
func (e *testEnv) user(t *testing.T) *models.User {
	t.Helper()
	u, err := e.store.GetUserByUsername(context.Background(), testUsername)
	require.NoError(t, err)
	return u
}

// withUser кладет пользователя в контекст, как это делает auth middleware
func withUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(WithUser(r.Context(), user))
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}
