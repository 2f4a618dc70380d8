package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestComments(t *testing.T, maxLen int) (*CommentStore, string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "fotodiario_comments_*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	store, err := NewCommentStore(tmpDir, maxLen)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to create comment store: %v", err)
	}

	cleanup := func() {
		os.RemoveAll(tmpDir)
	}
	return store, tmpDir, cleanup
}

func TestCommentLifecycle(t *testing.T) {
	store, _, cleanup := setupTestComments(t, 0)
	defer cleanup()

	// Absent comment reads as nil without error.
	c, err := store.Get("2024-01-15")
	require.NoError(t, err)
	assert.Nil(t, c)

	createdAt := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return createdAt }

	c, created, err := store.Save("2024-01-15", "A good day")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "A good day", c.Comment)
	assert.Equal(t, createdAt.Format(time.RFC3339), c.CreatedAt)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
	assert.Equal(t, 1, c.Version)

	// Update preserves created_at and advances updated_at.
	store.now = func() time.Time { return createdAt.Add(2 * time.Hour) }

	c, created, err = store.Save("2024-01-15", "A better day")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "A better day", c.Comment)
	assert.Equal(t, createdAt.Format(time.RFC3339), c.CreatedAt)
	assert.Equal(t, createdAt.Add(2*time.Hour).Format(time.RFC3339), c.UpdatedAt)

	c, err = store.Get("2024-01-15")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "A better day", c.Comment)

	deleted, err := store.Delete("2024-01-15")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete("2024-01-15")
	require.NoError(t, err)
	assert.False(t, deleted)

	c, err = store.Get("2024-01-15")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCommentValidation(t *testing.T) {
	store, _, cleanup := setupTestComments(t, 0)
	defer cleanup()

	_, err := store.Get("15-01-2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, _, err = store.Save("2024-02-30", "impossible date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = store.Delete("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, _, err = store.Save("2024-01-15", "")
	assert.ErrorIs(t, err, ErrEmptyComment)

	_, _, err = store.Save("2024-01-15", "   \n\t  ")
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestCommentSanitize(t *testing.T) {
	store, _, cleanup := setupTestComments(t, 10)
	defer cleanup()

	c, _, err := store.Save("2024-01-15", "  ab\x00c\x1bd\ne  ")
	require.NoError(t, err)
	assert.Equal(t, "abcd\ne", c.Comment)

	c, _, err = store.Save("2024-01-16", strings.Repeat("x", 50))
	require.NoError(t, err)
	assert.Equal(t, 10, len(c.Comment))

	// Rune cap, not byte cap.
	c, _, err = store.Save("2024-01-17", strings.Repeat("ñ", 50))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ñ", 10), c.Comment)
}

func TestCommentAtomicWrite(t *testing.T) {
	store, base, cleanup := setupTestComments(t, 0)
	defer cleanup()

	_, _, err := store.Save("2024-01-15", "hello")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(base, "comments"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2024-01-15.json", entries[0].Name())
}

func TestCommentCorruptDocument(t *testing.T) {
	store, base, cleanup := setupTestComments(t, 0)
	defer cleanup()

	path := filepath.Join(base, "comments", "2024-01-15.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o664))

	// Undecodable documents read as absent.
	c, err := store.Get("2024-01-15")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCommentRange(t *testing.T) {
	store, _, cleanup := setupTestComments(t, 0)
	defer cleanup()

	for _, date := range []string{"2024-01-10", "2024-01-15", "2024-02-01"} {
		_, _, err := store.Save(date, "note for "+date)
		require.NoError(t, err)
	}

	comments, err := store.Range("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "note for 2024-01-10", comments["2024-01-10"].Comment)
	assert.Equal(t, "note for 2024-01-15", comments["2024-01-15"].Comment)

	_, err = store.Range("2024-02-01", "2024-01-01")
	assert.Error(t, err)

	_, err = store.Range("bad", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCommentStats(t *testing.T) {
	store, _, cleanup := setupTestComments(t, 0)
	defer cleanup()

	empty, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalComments)
	assert.Equal(t, 0.0, empty.AvgLength)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, _, err = store.Save("2024-01-10", "abcd")
	require.NoError(t, err)
	store.now = func() time.Time { return now.Add(time.Hour) }
	_, _, err = store.Save("2024-02-20", "ab")
	require.NoError(t, err)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalComments)
	assert.Equal(t, 6, stats.TotalCharacters)
	assert.Equal(t, 3.0, stats.AvgLength)
	assert.Equal(t, "2024-01-10", stats.FirstCommentDate)
	assert.Equal(t, "2024-02-20", stats.LastCommentDate)
	assert.Equal(t, now.Add(time.Hour).Format(time.RFC3339), stats.MostRecentUpdate)
}
