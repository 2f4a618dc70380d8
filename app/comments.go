package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/AEMWks/fotodiario/models"
)

// ErrInvalidDate marks malformed date keys given to the comment store.
var ErrInvalidDate = errors.New("invalid date format")

// ErrEmptyComment marks save attempts with nothing to store.
var ErrEmptyComment = errors.New("comment must not be empty")

// CommentStore keeps one JSON document per diary date under
// <base>/comments/. It is the only writer in the whole system; writes go
// to a temp file first and are renamed into place so readers never see a
// partial document.
type CommentStore struct {
	dir    string
	maxLen int
	now    func() time.Time
}

func NewCommentStore(basePath string, maxLen int) (*CommentStore, error) {
	dir := filepath.Join(basePath, commentsDirName)
	if err := os.MkdirAll(dir, 0o775); err != nil {
		return nil, fmt.Errorf("creating comments directory: %w", err)
	}
	if maxLen <= 0 {
		maxLen = 5000
	}
	return &CommentStore{dir: dir, maxLen: maxLen, now: time.Now}, nil
}

func (s *CommentStore) filePath(date string) string {
	return filepath.Join(s.dir, date+".json")
}

// Get returns the comment for a date, or nil when none exists. A stored
// document that no longer decodes is treated as absent.
func (s *CommentStore) Get(date string) (*models.Comment, error) {
	if !ValidDate(date) {
		return nil, ErrInvalidDate
	}

	data, err := os.ReadFile(s.filePath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading comment for %s: %w", date, err)
	}

	var c models.Comment
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, nil
	}
	return &c, nil
}

// Save creates or updates the comment for a date. created_at survives
// updates; updated_at always advances to now.
func (s *CommentStore) Save(date, text string) (*models.Comment, bool, error) {
	if !ValidDate(date) {
		return nil, false, ErrInvalidDate
	}

	text = s.sanitize(text)
	if text == "" {
		return nil, false, ErrEmptyComment
	}

	now := s.now().Format(time.RFC3339)

	existing, err := s.Get(date)
	if err != nil {
		return nil, false, err
	}

	c := models.Comment{
		Date:      date,
		Comment:   text,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
	created := existing == nil
	if existing != nil {
		c.CreatedAt = existing.CreatedAt
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, false, fmt.Errorf("encoding comment for %s: %w", date, err)
	}

	tmp := s.filePath(date) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o664); err != nil {
		return nil, false, fmt.Errorf("writing comment temp file for %s: %w", date, err)
	}
	if err := os.Rename(tmp, s.filePath(date)); err != nil {
		os.Remove(tmp)
		return nil, false, fmt.Errorf("replacing comment for %s: %w", date, err)
	}

	return &c, created, nil
}

// Delete removes the comment for a date. Returns false when there was
// nothing to delete.
func (s *CommentStore) Delete(date string) (bool, error) {
	if !ValidDate(date) {
		return false, ErrInvalidDate
	}

	err := os.Remove(s.filePath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("deleting comment for %s: %w", date, err)
	}
	return true, nil
}

// Range returns all comments between start and end inclusive, keyed by
// date. It iterates the stored documents rather than every calendar day
// so sparse stores stay cheap.
func (s *CommentStore) Range(start, end string) (map[string]models.Comment, error) {
	if !ValidDate(start) || !ValidDate(end) {
		return nil, ErrInvalidDate
	}
	if start > end {
		return nil, fmt.Errorf("start date %s is after end date %s", start, end)
	}

	out := map[string]models.Comment{}
	for _, date := range s.storedDates() {
		if date < start || date > end {
			continue
		}
		if c, err := s.Get(date); err == nil && c != nil {
			out[date] = *c
		}
	}
	return out, nil
}

// Stats summarizes the comment store.
func (s *CommentStore) Stats() (models.CommentStats, error) {
	stats := models.CommentStats{}

	dates := s.storedDates()
	var lastUpdate time.Time

	for _, date := range dates {
		c, err := s.Get(date)
		if err != nil || c == nil {
			continue
		}
		stats.TotalComments++
		stats.TotalCharacters += utf8.RuneCountInString(c.Comment)

		if stats.FirstCommentDate == "" || date < stats.FirstCommentDate {
			stats.FirstCommentDate = date
		}
		if date > stats.LastCommentDate {
			stats.LastCommentDate = date
		}
		if t, err := time.Parse(time.RFC3339, c.UpdatedAt); err == nil && t.After(lastUpdate) {
			lastUpdate = t
		}
	}

	if stats.TotalComments > 0 {
		stats.AvgLength = round1(float64(stats.TotalCharacters) / float64(stats.TotalComments))
	}
	if !lastUpdate.IsZero() {
		stats.MostRecentUpdate = lastUpdate.Format(time.RFC3339)
	}
	return stats, nil
}

func (s *CommentStore) storedDates() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var dates []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		date := strings.TrimSuffix(name, ".json")
		if ValidDate(date) {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}

// sanitize trims, strips control characters except newline and tab, and
// caps the length in runes.
func (s *CommentStore) sanitize(text string) string {
	text = strings.TrimSpace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || r == '\r' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7F {
			continue
		}
		b.WriteRune(r)
	}
	text = b.String()

	if utf8.RuneCountInString(text) > s.maxLen {
		runes := []rune(text)
		text = string(runes[:s.maxLen])
	}
	return text
}
