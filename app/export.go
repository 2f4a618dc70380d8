package app

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AEMWks/fotodiario/models"
)

type ExportType string

const (
	ExportDay   ExportType = "day"
	ExportWeek  ExportType = "week"
	ExportMonth ExportType = "month"
	ExportRange ExportType = "range"
	ExportAll   ExportType = "all"
)

// ExportSelection names the slice of the library to export and how each
// file should be called inside the archive.
type ExportSelection struct {
	Name  string
	Files []ExportFile
}

type ExportFile struct {
	Record      models.MediaRecord
	ArchiveName string
}

// ExportRequest carries the already-validated export parameters.
type ExportRequest struct {
	Type      ExportType
	Date      string // day and week exports
	Month     string // YYYY-MM
	StartDate string
	EndDate   string
	MaxFiles  int
}

// ResolveExport turns an export request into the concrete file list.
// Day, week and month all reduce to date ranges over ScanDate; "all"
// walks the whole tree. Selections are capped at req.MaxFiles.
func (l *Library) ResolveExport(req ExportRequest) (ExportSelection, error) {
	var sel ExportSelection

	switch req.Type {
	case ExportDay:
		if !ValidDate(req.Date) {
			return sel, fmt.Errorf("day export needs a valid date")
		}
		sel.Name = "fotos_" + req.Date
		sel.Files = l.exportRange(req.Date, req.Date, req.MaxFiles)

	case ExportWeek:
		if !ValidDate(req.Date) {
			return sel, fmt.Errorf("week export needs a valid date")
		}
		start, end := weekBounds(req.Date)
		sel.Name = "fotos_semana_" + req.Date
		sel.Files = l.exportRange(start, end, req.MaxFiles)

	case ExportMonth:
		t, err := time.Parse("2006-01", req.Month)
		if err != nil {
			return sel, fmt.Errorf("month export needs YYYY-MM")
		}
		start := t.Format("2006-01-02")
		end := t.AddDate(0, 1, -1).Format("2006-01-02")
		sel.Name = "fotos_mes_" + req.Month
		sel.Files = l.exportRange(start, end, req.MaxFiles)

	case ExportRange:
		if !ValidDate(req.StartDate) || !ValidDate(req.EndDate) {
			return sel, fmt.Errorf("range export needs valid start and end dates")
		}
		if req.StartDate > req.EndDate {
			return sel, fmt.Errorf("start date must not be after end date")
		}
		sel.Name = "fotos_" + req.StartDate + "_" + req.EndDate
		sel.Files = l.exportRange(req.StartDate, req.EndDate, req.MaxFiles)

	case ExportAll:
		sel.Name = "fotos_completo_" + l.Today()
		for _, rec := range l.Scan() {
			if req.MaxFiles > 0 && len(sel.Files) >= req.MaxFiles {
				break
			}
			sel.Files = append(sel.Files, ExportFile{
				Record:      rec,
				ArchiveName: fmt.Sprintf("%04d/%02d/%02d/%s", rec.Year, rec.Month, rec.Day, rec.Filename),
			})
		}

	default:
		return sel, fmt.Errorf("unknown export type %q", req.Type)
	}

	return sel, nil
}

// exportRange collects files day by day so the single-day fast path and
// its cache do the work. Archive entries group by date.
func (l *Library) exportRange(start, end string, maxFiles int) []ExportFile {
	var files []ExportFile

	from, _ := time.Parse("2006-01-02", start)
	to, _ := time.Parse("2006-01-02", end)

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		for _, rec := range l.ScanDate(date) {
			if maxFiles > 0 && len(files) >= maxFiles {
				return files
			}
			files = append(files, ExportFile{
				Record:      rec,
				ArchiveName: date + "/" + rec.Filename,
			})
		}
	}
	return files
}

// weekBounds returns the Monday..Sunday range containing date.
func weekBounds(date string) (string, string) {
	t, _ := time.Parse("2006-01-02", date)
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	monday := t.AddDate(0, 0, -offset)
	return monday.Format("2006-01-02"), monday.AddDate(0, 0, 6).Format("2006-01-02")
}

// WriteZip streams the selection as a ZIP archive. Files that vanished
// between scan and export are skipped, matching the scan layer's
// absence-is-not-failure rule.
func (sel ExportSelection) WriteZip(w io.Writer) error {
	zw := zip.NewWriter(w)

	for _, f := range sel.Files {
		src, err := os.Open(f.Record.FullPath)
		if err != nil {
			continue
		}

		header := &zip.FileHeader{
			Name:     f.ArchiveName,
			Method:   zip.Deflate,
			Modified: f.Record.ModTime,
		}
		dst, err := zw.CreateHeader(header)
		if err != nil {
			src.Close()
			return fmt.Errorf("creating zip entry %s: %w", f.ArchiveName, err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			src.Close()
			return fmt.Errorf("writing zip entry %s: %w", f.ArchiveName, err)
		}
		src.Close()
	}

	return zw.Close()
}

// ExportMetadata is the JSON-format export document.
type ExportMetadata struct {
	Stats       ExportStats                     `json:"stats"`
	FilesByDate map[string][]ExportedFileRecord `json:"files_by_date"`
}

type ExportStats struct {
	TotalFiles int    `json:"total_files"`
	TotalSize  int64  `json:"total_size"`
	Photos     int    `json:"photos"`
	Videos     int    `json:"videos"`
	ExportDate string `json:"export_date"`
}

type ExportedFileRecord struct {
	Filename string           `json:"filename"`
	Time     string           `json:"timestamp"`
	Type     models.MediaType `json:"type"`
	Size     int64            `json:"size"`
	SizeMB   float64          `json:"size_mb"`
}

// Metadata builds the JSON export document for the selection.
func (sel ExportSelection) Metadata(now time.Time) ExportMetadata {
	meta := ExportMetadata{
		FilesByDate: map[string][]ExportedFileRecord{},
	}
	meta.Stats.ExportDate = now.Format(time.RFC3339)

	for _, f := range sel.Files {
		rec := f.Record
		meta.Stats.TotalFiles++
		meta.Stats.TotalSize += rec.Size
		if rec.Type == models.TypeVideo {
			meta.Stats.Videos++
		} else {
			meta.Stats.Photos++
		}

		meta.FilesByDate[rec.Date] = append(meta.FilesByDate[rec.Date], ExportedFileRecord{
			Filename: rec.Filename,
			Time:     rec.Time,
			Type:     rec.Type,
			Size:     rec.Size,
			SizeMB:   rec.SizeMB,
		})
	}

	return meta
}
