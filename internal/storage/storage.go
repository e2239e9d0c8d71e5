package storage

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/eugenenazirov/section-kit/internal/sections"
)

var (
	// ErrUnknownSection indicates the store was not set up for the requested section.
	ErrUnknownSection = errors.New("no override slot for section")
	// ErrRevisionMismatch indicates a conditional write lost a race with another editor.
	ErrRevisionMismatch = errors.New("override revision does not match")
)

// Entry is the override document stored for one section.
type Entry struct {
	Document  sections.Document
	Revision  string
	UpdatedAt time.Time
}

// Storage keeps the override documents the editor writes between render passes.
type Storage interface {
	GetOverride(section string) (Entry, error)
	// SetOverride replaces the document. A non-empty ifRevision must match the
	// stored revision.
	SetOverride(section string, doc sections.Document, ifRevision string) (Entry, error)
	ResetOverride(section string) (Entry, error)
}

// MemoryStorage keeps overrides in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[string]Entry
	clock   func() time.Time
	entropy io.Reader
}

// Option configures MemoryStorage.
type Option func(*MemoryStorage)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *MemoryStorage) {
		s.clock = clock
	}
}

// NewMemoryStorage creates an empty override slot for every named section.
func NewMemoryStorage(sectionNames []string, opts ...Option) *MemoryStorage {
	s := &MemoryStorage{
		entries: make(map[string]Entry, len(sectionNames)),
		clock: func() time.Time {
			return time.Now().UTC()
		},
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, name := range sectionNames {
		s.entries[name] = s.newEntry(sections.Document{})
	}
	return s
}

// GetOverride returns a defensive copy of the stored override.
func (s *MemoryStorage) GetOverride(section string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[section]
	if !ok {
		return Entry{}, fmt.Errorf("%w %q", ErrUnknownSection, section)
	}
	return cloneEntry(entry), nil
}

// SetOverride stores a copy of doc under a fresh revision.
func (s *MemoryStorage) SetOverride(section string, doc sections.Document, ifRevision string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entries[section]
	if !ok {
		return Entry{}, fmt.Errorf("%w %q", ErrUnknownSection, section)
	}
	if ifRevision != "" && ifRevision != current.Revision {
		return Entry{}, ErrRevisionMismatch
	}

	entry := s.newEntry(doc.Clone())
	s.entries[section] = entry
	return cloneEntry(entry), nil
}

// ResetOverride drops every override of the section.
func (s *MemoryStorage) ResetOverride(section string) (Entry, error) {
	return s.SetOverride(section, sections.Document{}, "")
}

// newEntry must be called with the write lock held or during construction.
func (s *MemoryStorage) newEntry(doc sections.Document) Entry {
	now := s.clock()
	return Entry{
		Document:  doc,
		Revision:  ulid.MustNew(ulid.Timestamp(now), s.entropy).String(),
		UpdatedAt: now,
	}
}

func cloneEntry(e Entry) Entry {
	e.Document = e.Document.Clone()
	return e
}
