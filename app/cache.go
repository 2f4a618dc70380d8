package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/AEMWks/fotodiario/models"
)

// dayCache memoizes per-day directory listings for a short TTL. It is
// bounded by the number of distinct dates queried within one TTL window,
// which is small at this library's scale.
type dayCache struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]cacheEntry
}

type cacheEntry struct {
	records []models.MediaRecord
	at      time.Time
}

func newDayCache(ttl time.Duration) *dayCache {
	return &dayCache{ttl: ttl, m: make(map[string]cacheEntry)}
}

func (c *dayCache) get(date string) ([]models.MediaRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.m[date]
	if !ok || time.Since(e.at) > c.ttl {
		return nil, false
	}
	return e.records, true
}

func (c *dayCache) put(date string, records []models.MediaRecord) {
	c.mu.Lock()
	c.m[date] = cacheEntry{records: records, at: time.Now()}
	c.mu.Unlock()
}

func (c *dayCache) invalidate(date string) {
	c.mu.Lock()
	delete(c.m, date)
	c.mu.Unlock()
}

func (c *dayCache) clear() {
	c.mu.Lock()
	c.m = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// InvalidateDate drops a single day from the listing cache.
func (l *Library) InvalidateDate(date string) {
	if l.cache != nil {
		l.cache.invalidate(date)
	}
}

// InvalidateAll drops the whole listing cache.
func (l *Library) InvalidateAll() {
	if l.cache != nil {
		l.cache.clear()
	}
}

// Watch invalidates cached day listings when files change under the base
// path. Day directories are registered as they appear; the watcher runs
// until ctx is done. With caching disabled it returns immediately.
func (l *Library) Watch(ctx context.Context, logger zerolog.Logger) error {
	if l.cache == nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	addTree := func() {
		if err := watcher.Add(l.basePath); err != nil {
			logger.Warn().Err(err).Str("path", l.basePath).Msg("watch add failed")
		}
		for _, year := range l.digitDirs(l.basePath, 4) {
			yearDir := filepath.Join(l.basePath, year)
			watcher.Add(yearDir)
			for _, month := range l.digitDirs(yearDir, 2) {
				monthDir := filepath.Join(yearDir, month)
				watcher.Add(monthDir)
				for _, day := range l.digitDirs(monthDir, 2) {
					watcher.Add(filepath.Join(monthDir, day))
				}
			}
		}
	}
	addTree()

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				l.handleEvent(watcher, event, logger)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("watcher error")
			}
		}
	}()

	return nil
}

func (l *Library) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event, logger zerolog.Logger) {
	if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
		return
	}

	if date, ok := l.dateForPath(event.Name); ok {
		logger.Debug().Str("path", event.Name).Str("date", date).Msg("invalidating day listing")
		l.cache.invalidate(date)
	}

	// New directories must join the watch set so future day-level
	// events are seen.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			watcher.Add(event.Name)
		}
	}
}

// dateForPath maps a path under the base tree to the diary date it
// belongs to, when it sits at or below a root/YYYY/MM/DD directory.
func (l *Library) dateForPath(p string) (string, bool) {
	rel, err := filepath.Rel(l.basePath, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 3 {
		return "", false
	}
	if !isDigits(parts[0], 4) || !isDigits(parts[1], 2) || !isDigits(parts[2], 2) {
		return "", false
	}
	return parts[0] + "-" + parts[1] + "-" + parts[2], true
}
