package app

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/AEMWks/fotodiario/models"
)

// Library answers every query over the media tree. It holds no durable
// state: each call re-reads the filesystem, optionally through a short
// TTL cache of per-day directory listings.
type Library struct {
	basePath  string
	photoExts map[string]bool
	videoExts map[string]bool
	namePat   *regexp.Regexp
	cache     *dayCache
	log       zerolog.Logger

	// now is swappable in tests for date-relative filters.
	now func() time.Time
}

var datePat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func NewLibrary(cfg models.LibraryConfig, logger zerolog.Logger) *Library {
	photo := extSet(cfg.PhotoExtensions)
	video := extSet(cfg.VideoExtensions)

	all := make([]string, 0, len(photo)+len(video))
	for e := range photo {
		all = append(all, e)
	}
	for e := range video {
		all = append(all, e)
	}

	var cache *dayCache
	if cfg.CacheEnabled {
		cache = newDayCache(time.Duration(cfg.CacheTTL) * time.Second)
	}

	return &Library{
		basePath:  filepath.Clean(cfg.BasePath),
		photoExts: photo,
		videoExts: video,
		namePat:   buildNamePattern(all),
		cache:     cache,
		log:       logger,
		now:       time.Now,
	}
}

func extSet(exts []string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, e := range exts {
		m[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}
	return m
}

func buildNamePattern(exts []string) *regexp.Regexp {
	if len(exts) == 0 {
		exts = []string{"jpg", "jpeg", "png", "mp4"}
	}
	for i, e := range exts {
		exts[i] = regexp.QuoteMeta(e)
	}
	pat := fmt.Sprintf(`^(\d{2})-(\d{2})-(\d{2})\.(%s)$`, strings.Join(exts, "|"))
	return regexp.MustCompile(`(?i)` + pat)
}

// BasePath returns the library root on disk.
func (l *Library) BasePath() string {
	return l.basePath
}

// ValidDate reports whether s is a well-formed calendar date.
func ValidDate(s string) bool {
	if !datePat.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseName checks a base filename against the HH-MM-SS.ext convention
// and returns the embedded capture time and lowercase extension. The
// numeric groups are taken as-is; "99-99-99.jpg" is syntactically valid.
func (l *Library) ParseName(filename string) (captureTime, ext string, ok bool) {
	m := l.namePat.FindStringSubmatch(filename)
	if m == nil {
		return "", "", false
	}
	return m[1] + ":" + m[2] + ":" + m[3], strings.ToLower(m[4]), true
}

// typeFor classifies an already-validated lowercase extension.
func (l *Library) typeFor(ext string) models.MediaType {
	if l.videoExts[ext] {
		return models.TypeVideo
	}
	return models.TypePhoto
}

// ParseRecord derives a MediaRecord from an absolute file path. It
// returns false when the path does not sit exactly at root/YYYY/MM/DD/
// with digit-only segments or the filename misses the convention; such
// files are invisible, not errors.
func (l *Library) ParseRecord(fullPath string, info os.FileInfo) (models.MediaRecord, bool) {
	rel, err := filepath.Rel(l.basePath, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return models.MediaRecord{}, false
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 4 {
		return models.MediaRecord{}, false
	}

	year, month, day := parts[0], parts[1], parts[2]
	if !isDigits(year, 4) || !isDigits(month, 2) || !isDigits(day, 2) {
		return models.MediaRecord{}, false
	}

	captureTime, ext, ok := l.ParseName(parts[3])
	if !ok {
		return models.MediaRecord{}, false
	}

	if info == nil {
		info, err = os.Stat(fullPath)
		if err != nil || info.IsDir() {
			return models.MediaRecord{}, false
		}
	}

	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)

	return models.MediaRecord{
		Filename:  parts[3],
		Date:      year + "-" + month + "-" + day,
		Year:      y,
		Month:     mo,
		Day:       d,
		Time:      captureTime,
		Type:      l.typeFor(ext),
		Extension: ext,
		Path:      path.Join("/photos", year, month, day, parts[3]),
		Size:      info.Size(),
		SizeMB:    MBytes(info.Size()),
		ModTime:   info.ModTime(),
		FullPath:  fullPath,
	}, true
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MBytes converts bytes to megabytes rounded to two decimals.
func MBytes(b int64) float64 {
	mb := float64(b) / (1024 * 1024)
	return float64(int64(mb*100+0.5)) / 100
}

// Today returns the current date in the library's clock.
func (l *Library) Today() string {
	return l.now().Format("2006-01-02")
}
