package flowsession

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore хранилище сценариев в памяти процесса. Используется, когда Redis выключен.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	locks   map[string]bool
	now     func() time.Time
}

// NewMemoryStore создает хранилище в памяти
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		locks:   make(map[string]bool),
		now:     time.Now,
	}
}

// Load возвращает копию сохранённого сценария
func (s *MemoryStore) Load(_ context.Context, flowID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[flowID]
	if !ok {
		return nil, ErrNotFound
	}
	if s.ttl > 0 && !s.now().Before(entry.expiresAt) {
		delete(s.entries, flowID)
		return nil, ErrNotFound
	}
	return append([]byte(nil), entry.data...), nil
}

// Store сохраняет копию сценария
func (s *MemoryStore) Store(_ context.Context, flowID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[flowID] = memoryEntry{
		data:      append([]byte(nil), data...),
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

// AcquireSubmitLock возвращает false, если блокировка уже взята
func (s *MemoryStore) AcquireSubmitLock(_ context.Context, flowID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locks[flowID] {
		return false, nil
	}
	s.locks[flowID] = true
	return true, nil
}

// ReleaseSubmitLock снимает блокировку
func (s *MemoryStore) ReleaseSubmitLock(_ context.Context, flowID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.locks, flowID)
	return nil
}
