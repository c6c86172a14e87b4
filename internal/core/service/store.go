package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"retoque/internal/core/domain"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

const sweepInterval = time.Minute

// MemoryStore keeps live edit sessions in memory, keyed by session ID.
// Sessions idle longer than the TTL are swept; nothing is persisted.
type MemoryStore struct {
	sessions map[string]*domain.Session
	ttl      time.Duration
	mutex    *sync.Mutex
}

func NewMemoryStore(ctx context.Context, ttl time.Duration) *MemoryStore {
	ms := &MemoryStore{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		mutex:    &sync.Mutex{},
	}

	go ms.sweepExpired(ctx)

	return ms
}

func (m *MemoryStore) Get(id string) (*domain.Session, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	sess, ok := m.sessions[id]
	return sess, ok
}

func (m *MemoryStore) Create() (*domain.Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("error generating session id: %w", err)
	}

	sess := domain.NewSession(id.String(), DefaultPrompt)

	m.mutex.Lock()
	m.sessions[sess.ID] = sess
	m.mutex.Unlock()

	log.Debug().Str("sessionId", sess.ID).Msg("created session")

	return sess, nil
}

func (m *MemoryStore) sweepExpired(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("stopping session sweep")
			return
		case <-ticker.C:
			m.expire(time.Now())
		}
	}
}

func (m *MemoryStore) expire(now time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for id, sess := range m.sessions {
		if now.Sub(sess.LastTouched()) > m.ttl {
			delete(m.sessions, id)
			log.Debug().Str("sessionId", id).Msg("expired idle session")
		}
	}
}
