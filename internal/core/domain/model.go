package domain

import (
	"sync"
	"time"
)

// Phase is the UI lifecycle state derived from the session's contents.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseImageLoaded Phase = "image_loaded"
	PhaseRequesting  Phase = "requesting"
	PhaseResultReady Phase = "result_ready"
	PhaseError       Phase = "error"
)

// Image is raw image bytes together with their declared MIME type.
// Both fields are always set together.
type Image struct {
	Data     []byte
	MIMEType string
}

// Session holds the mutable state of one edit session. It is created fresh
// per browser session, mutated only by the controller, and never persisted.
type Session struct {
	ID     string
	Source *Image
	Prompt string
	Result *Image
	Phase  Phase

	updatedAt time.Time
	mu        sync.Mutex
}

// NewSession returns a fresh idle session with a pre-seeded prompt.
func NewSession(id, prompt string) *Session {
	return &Session{
		ID:        id,
		Prompt:    prompt,
		Phase:     PhaseIdle,
		updatedAt: time.Now(),
	}
}

// Lock guards all reads and writes of the session fields. Handlers for the
// same session run concurrently on the server, unlike the original
// single-threaded page.
func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Touch records mutation time for idle expiry. Callers must hold the lock.
func (s *Session) Touch() {
	s.updatedAt = time.Now()
}

func (s *Session) LastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

type EditRequest struct {
	Prompt string
	Image  Image
}

// ResultPart is one content part of a generation response, in API order.
// Exactly one of Text or Image is set.
type ResultPart struct {
	Text  string
	Image *Image
}

// AdvisoryKind classifies user-visible error notices.
type AdvisoryKind string

const (
	AdvisoryValidation AdvisoryKind = "validation"
	AdvisoryRead       AdvisoryKind = "read"
	AdvisoryAPI        AdvisoryKind = "api"
)
