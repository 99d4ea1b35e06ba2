package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/billcraft/billcraft/internal/domain"
)

// FileStore implements domain.InvoiceStore by writing flat text files named
// <customer>_invoice.txt into a directory.
type FileStore struct {
	dir string
}

// New creates a FileStore rooted at dir.
func New(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save writes the invoice's two-line summary and returns the path written.
// The file handle is closed on every exit path, and any create, write or
// close failure is surfaced to the caller.
func (s *FileStore) Save(inv domain.Invoice) (string, error) {
	name, err := fileName(inv.Customer)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteString(inv.Summary()); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// fileName derives <customer>_invoice.txt and rejects customer names that
// would escape the store directory or embed path separators.
func fileName(customer string) (string, error) {
	name := customer + "_invoice.txt"
	if customer == "" ||
		strings.ContainsAny(customer, `/\`) ||
		strings.ContainsRune(customer, 0) ||
		filepath.Base(name) != name {
		return "", fmt.Errorf("deriving invoice filename: customer name %q contains invalid characters", customer)
	}
	return name, nil
}
