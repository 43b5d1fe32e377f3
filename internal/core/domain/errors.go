package domain

import "errors"

var (
	// ErrRemoteUnavailable - сетевая ошибка или не-2xx ответ удаленного API
	ErrRemoteUnavailable = errors.New("remote api unavailable")
	// ErrNotFound - удаленный API ответил 404
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput - некорректные идентификаторы или тело запроса
	ErrInvalidInput = errors.New("invalid input")
)
