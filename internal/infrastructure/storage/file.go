package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/build50/build50/internal/ports"
	siteerrors "github.com/build50/build50/pkg/errors"
)

const fileFormatVersion = "1"

// stateFile is the on-disk layout of a FileStore.
type stateFile struct {
	Version   string            `json:"version"`
	Values    map[string]string `json:"values"`
	Enquiries []ports.Enquiry   `json:"enquiries,omitempty"`
}

// FileStore persists state as a single JSON document. Every write rewrites
// the whole file through a temporary file and rename, so readers never see a
// partial document.
type FileStore struct {
	path string
	mu   sync.RWMutex
	doc  stateFile
}

// NewFileStore opens (or prepares to create) the document at path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, siteerrors.NewStorageError("open", "", errors.New("path is required"))
	}
	s := &FileStore{
		path: path,
		doc:  stateFile{Version: fileFormatVersion, Values: map[string]string{}},
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, siteerrors.NewStorageError("open", path, fmt.Errorf("create directory: %w", err))
	}
	if err := s.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, siteerrors.NewStorageError("open", path, err)
	}
	return s, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var doc stateFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse state file: %w", err)
	}
	if doc.Values == nil {
		doc.Values = map[string]string{}
	}
	s.doc = doc
	return nil
}

// save must be called with mu held for writing.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}
	return nil
}

// Get implements ports.StateStore.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.doc.Values[key]
	return v, ok, nil
}

// Set implements ports.StateStore. The value is on disk when Set returns.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.doc.Values[key]
	s.doc.Values[key] = value
	if err := s.save(); err != nil {
		if had {
			s.doc.Values[key] = prev
		} else {
			delete(s.doc.Values, key)
		}
		return siteerrors.NewStorageError("set", key, err)
	}
	return nil
}

// Save implements ports.EnquiryRepository.
func (s *FileStore) Save(ctx context.Context, enquiry ports.Enquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Enquiries = append(s.doc.Enquiries, enquiry)
	if err := s.save(); err != nil {
		s.doc.Enquiries = s.doc.Enquiries[:len(s.doc.Enquiries)-1]
		return siteerrors.NewStorageError("save enquiry", enquiry.ID, err)
	}
	return nil
}

// List implements ports.EnquiryRepository.
func (s *FileStore) List(ctx context.Context) ([]ports.Enquiry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.Enquiry(nil), s.doc.Enquiries...), nil
}

// Close implements ports.StateStore. Writes are already durable.
func (s *FileStore) Close() error { return nil }

var _ Backend = (*FileStore)(nil)
