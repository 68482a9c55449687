package storage

import (
	"context"
	"sync"

	"github.com/build50/build50/internal/ports"
)

// MemoryStore keeps everything in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu        sync.RWMutex
	values    map[string]string
	enquiries []ports.Enquiry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements ports.StateStore.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements ports.StateStore.
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Save implements ports.EnquiryRepository.
func (m *MemoryStore) Save(ctx context.Context, enquiry ports.Enquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enquiries = append(m.enquiries, enquiry)
	return nil
}

// List implements ports.EnquiryRepository.
func (m *MemoryStore) List(ctx context.Context) ([]ports.Enquiry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]ports.Enquiry(nil), m.enquiries...), nil
}

// Close implements ports.StateStore.
func (m *MemoryStore) Close() error { return nil }

var _ Backend = (*MemoryStore)(nil)
