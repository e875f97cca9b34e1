package models

import "time"

// User представляет пользователя в системе
type User struct {
	CreatedAt      time.Time `json:"created_at"`      // время создания
	ID             string    `json:"id"`              // UUID пользователя
	Username       string    `json:"username"`        // уникальный username
	Email          string    `json:"email,omitempty"` // email, может быть пустым
	PasswordHash   string    `json:"-"`               // bcrypt хеш пароля
	CompletedSteps []int     `json:"completed_steps"` // id выполненных шагов, по возрастанию
	IsActive       bool      `json:"is_active"`
}

// PasswordReset представляет ожидающий запрос на сброс пароля.
// Для одного username хранится не более одного запроса.
type PasswordReset struct {
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Code      string    `json:"-"`
}

// Expired reports whether the reset is past its expiry at now
func (r *PasswordReset) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// ProgressLogEntry - запись журнала изменений прогресса (append-only)
type ProgressLogEntry struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Note      string    `json:"note,omitempty"`
	StepID    int       `json:"step_id"`
	Completed bool      `json:"completed"`
}

// Comparison - сохраненный снимок сравнения локаций для пользователя
type Comparison struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
	Payload      []byte    `json:"payload"` // JSON
}
