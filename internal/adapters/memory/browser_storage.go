package memory

import (
	"context"
	"sync"
	"time"

	"real-estate-manager/internal/constants"

	"github.com/google/uuid"
	"github.com/karlseguin/ccache/v3"
)

// BrowserStorage хранит значения сессий в памяти процесса.
// Используется, когда DATABASE_URL не задан, и в тестах.
// Сессия удаляется через ttl после последнего обращения или при превышении maxSessions.
type BrowserStorage struct {
	// mu сериализует чтение-изменение-запись карты сессии
	mu       sync.Mutex
	sessions *ccache.Cache[map[string]string]
	ttl      time.Duration
}

type Option func(*storageOptions)

type storageOptions struct {
	ttl         time.Duration
	maxSessions int64
}

// WithSessionTTL задает время жизни сессии без обращений.
func WithSessionTTL(ttl time.Duration) Option {
	return func(o *storageOptions) {
		o.ttl = ttl
	}
}

// WithMaxSessions ограничивает число сессий; лишние вытесняются начиная с давно неиспользуемых.
func WithMaxSessions(n int64) Option {
	return func(o *storageOptions) {
		if n > 0 {
			o.maxSessions = n
		}
	}
}

func NewBrowserStorage(opts ...Option) *BrowserStorage {
	o := storageOptions{
		ttl:         constants.MemorySessionTTLHours * time.Hour,
		maxSessions: constants.MaxMemorySessions,
	}
	for _, opt := range opts {
		opt(&o)
	}

	prune := uint32(o.maxSessions/10) + 1
	return &BrowserStorage{
		sessions: ccache.New(ccache.Configure[map[string]string]().MaxSize(o.maxSessions).ItemsToPrune(prune)),
		ttl:      o.ttl,
	}
}

// session возвращает живую карту сессии или nil.
func (s *BrowserStorage) session(sessionID uuid.UUID) map[string]string {
	item := s.sessions.Get(sessionID.String())
	if item == nil || item.Expired() {
		return nil
	}
	return item.Value()
}

func (s *BrowserStorage) GetItem(_ context.Context, sessionID uuid.UUID, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session(sessionID)
	if session == nil {
		return "", false, nil
	}
	s.sessions.Set(sessionID.String(), session, s.ttl)

	value, ok := session[key]
	return value, ok, nil
}

func (s *BrowserStorage) SetItem(_ context.Context, sessionID uuid.UUID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session(sessionID)
	if session == nil {
		session = make(map[string]string)
	}
	session[key] = value
	s.sessions.Set(sessionID.String(), session, s.ttl)
	return nil
}

func (s *BrowserStorage) RemoveItem(_ context.Context, sessionID uuid.UUID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session(sessionID)
	if session == nil {
		return nil
	}
	delete(session, key)
	if len(session) == 0 {
		s.sessions.Delete(sessionID.String())
		return nil
	}
	s.sessions.Set(sessionID.String(), session, s.ttl)
	return nil
}

// Stop останавливает фоновую горутину кэша.
func (s *BrowserStorage) Stop() {
	s.sessions.Stop()
}
