package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/AEMWks/fotodiario/models"
)

// setupTestLibrary creates a temporary media tree and a Library over it.
func setupTestLibrary(t *testing.T, cacheEnabled bool) (*Library, string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "fotodiario_test_*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	cfg := models.LibraryConfig{
		BasePath:        tmpDir,
		PhotoExtensions: []string{"jpg", "jpeg", "png"},
		VideoExtensions: []string{"mp4"},
		CacheEnabled:    cacheEnabled,
		CacheTTL:        300,
	}
	library := NewLibrary(cfg, zerolog.Nop())

	cleanup := func() {
		os.RemoveAll(tmpDir)
	}
	return library, tmpDir, cleanup
}

// writeMedia drops a file of the given size at base/YYYY/MM/DD/name.
func writeMedia(t *testing.T, base, date, name string, size int) {
	t.Helper()

	dir := filepath.Join(base, date[0:4], date[5:7], date[8:10])
	if err := os.MkdirAll(dir, 0o775); err != nil {
		t.Fatalf("failed to create day dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o664); err != nil {
		t.Fatalf("failed to write media file: %v", err)
	}
}
