// Package storage provides the persisted key-value and enquiry backends.
package storage

import (
	"fmt"

	"github.com/build50/build50/internal/config"
	"github.com/build50/build50/internal/ports"
)

// Backend is a store that also records enquiries.
type Backend interface {
	ports.StateStore
	ports.EnquiryRepository
}

// Open selects the backend named by settings.Driver.
func Open(settings config.StorageSettings) (Backend, error) {
	switch settings.Driver {
	case config.DriverFile, "":
		return NewFileStore(settings.Path)
	case config.DriverSQLite:
		return OpenSQLite(settings.Path)
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", settings.Driver)
	}
}
