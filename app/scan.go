package app

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/karrick/godirwalk"

	"github.com/AEMWks/fotodiario/models"
)

// commentsDirName lives under the base path but never holds media.
const commentsDirName = "comments"

// Scan walks the whole tree and returns every recognizable media record.
// Unreadable directories and malformed entries are skipped; absence of
// content is not a failure, so a missing root yields an empty list.
func (l *Library) Scan() []models.MediaRecord {
	var records []models.MediaRecord

	if _, err := os.Stat(l.basePath); err != nil {
		return records
	}

	err := godirwalk.Walk(l.basePath, &godirwalk.Options{
		Unsorted: true,
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if de.Name() == commentsDirName {
					return filepath.SkipDir
				}
				return nil
			}
			if !de.IsRegular() {
				return nil
			}
			if rec, ok := l.ParseRecord(osPathname, nil); ok {
				records = append(records, rec)
			}
			return nil
		},
		ErrorCallback: func(osPathname string, err error) godirwalk.ErrorAction {
			l.log.Warn().Err(err).Str("path", osPathname).Msg("skipping unreadable entry")
			return godirwalk.SkipNode
		},
	})
	if err != nil {
		l.log.Warn().Err(err).Str("root", l.basePath).Msg("library walk aborted")
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		if records[i].Time != records[j].Time {
			return records[i].Time < records[j].Time
		}
		return records[i].Filename < records[j].Filename
	})

	return records
}

// ScanDate lists the records of a single day without touching the rest
// of the tree. Output is sorted ascending by capture time and matches
// exactly what Scan would return filtered to that date.
func (l *Library) ScanDate(date string) []models.MediaRecord {
	if !datePat.MatchString(date) {
		return nil
	}

	if l.cache != nil {
		if recs, ok := l.cache.get(date); ok {
			return recs
		}
	}

	dir := filepath.Join(l.basePath, date[0:4], date[5:7], date[8:10])

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Missing or unreadable day directory means no content.
		return nil
	}

	var records []models.MediaRecord
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if rec, ok := l.ParseRecord(filepath.Join(dir, entry.Name()), info); ok {
			records = append(records, rec)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Time != records[j].Time {
			return records[i].Time < records[j].Time
		}
		return records[i].Filename < records[j].Filename
	})

	if l.cache != nil {
		l.cache.put(date, records)
	}

	return records
}

// Dates enumerates every active date by walking only the three directory
// levels, cheapest-first, and counting the valid files per day. Output is
// sorted ascending by date.
func (l *Library) Dates() []models.DateInfo {
	var dates []models.DateInfo

	years := l.digitDirs(l.basePath, 4)
	for _, year := range years {
		months := l.digitDirs(filepath.Join(l.basePath, year), 2)
		for _, month := range months {
			days := l.digitDirs(filepath.Join(l.basePath, year, month), 2)
			for _, day := range days {
				date := year + "-" + month + "-" + day
				files := l.ScanDate(date)
				if len(files) == 0 {
					continue
				}

				info := models.DateInfo{
					Date:      date,
					FileCount: len(files),
				}
				info.Year, _ = strconv.Atoi(year)
				info.Month, _ = strconv.Atoi(month)
				info.Day, _ = strconv.Atoi(day)
				for _, f := range files {
					if f.Type == models.TypeVideo {
						info.Videos++
					} else {
						info.Photos++
					}
				}
				dates = append(dates, info)
			}
		}
	}

	return dates
}

// ActiveDates returns just the date strings of days with content,
// ascending.
func (l *Library) ActiveDates() []string {
	infos := l.Dates()
	dates := make([]string, len(infos))
	for i, d := range infos {
		dates[i] = d.Date
	}
	return dates
}

// digitDirs lists subdirectory names of dir that are exactly width
// digits, sorted ascending.
func (l *Library) digitDirs(dir string, width int) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && isDigits(entry.Name(), width) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}
