package models

import (
	"fmt"
	"strconv"
	"time"
)

type MediaType string

const (
	TypePhoto MediaType = "photo"
	TypeVideo MediaType = "video"
	TypeAll   MediaType = "all"
)

// MediaRecord describes one media file found under the library root.
// Records are derived from the filesystem on every scan, never stored.
type MediaRecord struct {
	Filename  string    `json:"filename"`
	Date      string    `json:"date"` // YYYY-MM-DD, from the directory path
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Day       int       `json:"day"`
	Time      string    `json:"timestamp"` // HH:MM:SS, from the filename
	Type      MediaType `json:"type"`
	Extension string    `json:"extension"`
	Path      string    `json:"path"` // public URL path (/photos/...)
	Size      int64     `json:"size"`
	SizeMB    float64   `json:"size_mb"`
	ModTime   time.Time `json:"modified_at"`

	// Absolute filesystem path. Never serialized to clients.
	FullPath string `json:"-"`
}

// Hour returns the hour component of the capture time. The parser accepts
// any two-digit group, so callers bucketing by hour must fold with %24.
func (r *MediaRecord) Hour() int {
	return r.timePart(0)
}

func (r *MediaRecord) Minute() int {
	return r.timePart(1)
}

func (r *MediaRecord) Second() int {
	return r.timePart(2)
}

func (r *MediaRecord) timePart(i int) int {
	if len(r.Time) != 8 {
		return 0
	}
	n, err := strconv.Atoi(r.Time[i*3 : i*3+2])
	if err != nil {
		return 0
	}
	return n
}

// MinuteOfDay returns hour*60+minute, used for day time spans.
func (r *MediaRecord) MinuteOfDay() int {
	return r.Hour()*60 + r.Minute()
}

func (r *MediaRecord) String() string {
	return fmt.Sprintf("%s/%s (%s)", r.Date, r.Filename, r.Type)
}
