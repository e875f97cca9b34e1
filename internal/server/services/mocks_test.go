package services

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/storage"
)

// mockStore is an in-memory implementation of the storage interfaces for testing
type mockStore struct {
	users       map[string]*models.User // username -> User
	resets      map[string]*models.PasswordReset
	log         []*models.ProgressLogEntry
	comparisons []*models.Comparison
	updates     int // UpdateCompletedSteps calls
	getUserErr  error
	updateErr   error
	appendErr   error
	saveCmpErr  error
	mu          sync.Mutex
}

func newMockStore() *mockStore {
	return &mockStore{
		users:  make(map[string]*models.User),
		resets: make(map[string]*models.PasswordReset),
	}
}

func (m *mockStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Username]; ok {
		return storage.ErrUserAlreadyExists
	}
	u := *user
	m.users[user.Username] = &u
	return nil
}

func (m *mockStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getUserErr != nil {
		return nil, m.getUserErr
	}
	u, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	cp := *u
	cp.CompletedSteps = slices.Clone(u.CompletedSteps)
	return &cp, nil
}

func (m *mockStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	var name string
	for _, u := range m.users {
		if u.ID == id {
			name = u.Username
		}
	}
	m.mu.Unlock()
	if name == "" {
		return nil, storage.ErrUserNotFound
	}
	return m.GetUserByUsername(ctx, name)
}

func (m *mockStore) byID(id string) *models.User {
	for _, u := range m.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (m *mockStore) UpdatePasswordHash(_ context.Context, userID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.byID(userID)
	if u == nil {
		return storage.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (m *mockStore) UpdateCompletedSteps(_ context.Context, userID string, steps []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	if m.updateErr != nil {
		return m.updateErr
	}
	u := m.byID(userID)
	if u == nil {
		return storage.ErrUserNotFound
	}
	u.CompletedSteps = slices.Clone(steps)
	return nil
}

func (m *mockStore) SaveReset(_ context.Context, reset *models.PasswordReset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := *reset
	m.resets[reset.Username] = &r
	return nil
}

func (m *mockStore) GetReset(_ context.Context, username, code string) (*models.PasswordReset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resets[username]
	if !ok || r.Code != code {
		return nil, storage.ErrResetNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockStore) DeleteReset(_ context.Context, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.resets, username)
	return nil
}

func (m *mockStore) DeleteExpiredResets(_ context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k, r := range m.resets {
		if r.Expired(now) {
			delete(m.resets, k)
			n++
		}
	}
	return n, nil
}

func (m *mockStore) AppendProgressLog(_ context.Context, entry *models.ProgressLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.log = append(m.log, entry)
	return nil
}

func (m *mockStore) SaveComparison(_ context.Context, cmp *models.Comparison) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveCmpErr != nil {
		return m.saveCmpErr
	}
	m.comparisons = append(m.comparisons, cmp)
	return nil
}

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
