// Package services implements the auth gate and the progress tracker on top of storage.
package services

import "errors"

// Service errors. Handlers map them to HTTP status codes.
var (
	// ErrAuthentication - неверные учетные данные или токен (401)
	ErrAuthentication = errors.New("could not validate credentials")

	// ErrInvalidResetCode - нет запроса сброса с таким username и кодом (400)
	ErrInvalidResetCode = errors.New("invalid reset code")

	// ErrResetExpired - код сброса просрочен, запрос удален (400)
	ErrResetExpired = errors.New("reset code expired")

	// ErrUserExists - username уже занят (409)
	ErrUserExists = errors.New("username already registered")

	// ErrInvalidStep - step id отклонен валидатором (400)
	ErrInvalidStep = errors.New("invalid step")
)
