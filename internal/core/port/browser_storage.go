package port

import (
	"context"

	"github.com/google/uuid"
)

// BrowserStoragePort - аналог localStorage, разделенный по браузерным сессиям.
// Значения хранятся строками (JSON или data URL), без срока жизни.
type BrowserStoragePort interface {
	// GetItem возвращает found=false, если ключа нет.
	GetItem(ctx context.Context, sessionID uuid.UUID, key string) (value string, found bool, err error)
	SetItem(ctx context.Context, sessionID uuid.UUID, key, value string) error
	RemoveItem(ctx context.Context, sessionID uuid.UUID, key string) error
}
