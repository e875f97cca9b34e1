// Package validation проверяет пользовательский ввод регистрации и входа
package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"unicode/utf8"
)

// ErrInvalidInput wraps every validation failure
var ErrInvalidInput = errors.New("invalid input")

// usernamePattern: латиница, цифры, подчеркивание, точка и дефис
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
	MaxPasswordLen = 72 // предел bcrypt
)

// Username проверяет формат имени пользователя
func Username(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username cannot be empty", ErrInvalidInput)
	}

	n := len(username)
	if n < MinUsernameLen || n > MaxUsernameLen {
		return fmt.Errorf("%w: username must be %d-%d characters long", ErrInvalidInput, MinUsernameLen, MaxUsernameLen)
	}

	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: username can only contain letters, digits, '_', '.' and '-'", ErrInvalidInput)
	}

	return nil
}

// Password проверяет длину пароля. Считаются символы, лимит bcrypt считается в байтах.
func Password(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrInvalidInput)
	}

	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("%w: password must not exceed %d bytes", ErrInvalidInput, MaxPasswordLen)
	}

	return nil
}

// Email проверяет адрес; пустой email допустим
func Email(email string) error {
	if email == "" {
		return nil
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: email %q is not a valid address", ErrInvalidInput, email)
	}

	return nil
}
