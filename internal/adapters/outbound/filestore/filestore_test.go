package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/billcraft/billcraft/internal/adapters/outbound/filestore"
	"github.com/billcraft/billcraft/internal/adapters/outbound/render"
	"github.com/billcraft/billcraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Save(t *testing.T) {
	dir := t.TempDir()
	inv := domain.Invoice{Customer: "Mystery", Amount: 5000}

	path, err := filestore.New(dir).Save(inv)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Mystery_invoice.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, render.Text(inv), string(data), "persisted content must round-trip with the rendered text")
}

func TestFileStore_Save_Overwrites(t *testing.T) {
	dir := t.TempDir()
	store := filestore.New(dir)

	_, err := store.Save(domain.Invoice{Customer: "Mystery", Amount: 5000})
	require.NoError(t, err)
	path, err := store.Save(domain.Invoice{Customer: "Mystery", Amount: 250})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "250")
	assert.NotContains(t, string(data), "5000")
}

func TestFileStore_Save_InvalidCustomerName(t *testing.T) {
	store := filestore.New(t.TempDir())

	tests := []string{
		"../escape",
		"a/b",
		`a\b`,
	}
	for _, customer := range tests {
		t.Run(customer, func(t *testing.T) {
			_, err := store.Save(domain.Invoice{Customer: customer, Amount: 10})
			assert.Error(t, err)
		})
	}
}

func TestFileStore_Save_UnwritableDirSurfacesError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "nested")
	_, err := filestore.New(dir).Save(domain.Invoice{Customer: "Mystery", Amount: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")
}
