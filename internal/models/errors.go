package models

import "errors"

var (
	ErrNotFound                = errors.New("not found")
	ErrAlreadyExists           = errors.New("already exists")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrForbidden               = errors.New("forbidden")
	// ErrUpstream - внешний сервис (модель, геокодер) недоступен или ответил ошибкой
	ErrUpstream = errors.New("upstream service unavailable")
)
