package app

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AEMWks/fotodiario/models"
)

func intPtr(n int) *int       { return &n }
func int64Ptr(n int64) *int64 { return &n }

func sampleRecords() []models.MediaRecord {
	return []models.MediaRecord{
		{Filename: "08-00-00.jpg", Date: "2024-01-15", Year: 2024, Month: 1, Day: 15, Time: "08:00:00", Type: models.TypePhoto, Size: 100},
		{Filename: "12-30-00.mp4", Date: "2024-01-15", Year: 2024, Month: 1, Day: 15, Time: "12:30:00", Type: models.TypeVideo, Size: 5000},
		{Filename: "09-15-00.jpg", Date: "2024-02-01", Year: 2024, Month: 2, Day: 1, Time: "09:15:00", Type: models.TypePhoto, Size: 300},
		{Filename: "22-45-10.png", Date: "2024-02-03", Year: 2024, Month: 2, Day: 3, Time: "22:45:10", Type: models.TypePhoto, Size: 200},
	}
}

func TestFilter(t *testing.T) {
	library, _, cleanup := setupTestLibrary(t, false)
	defer cleanup()

	records := sampleRecords()

	tests := []struct {
		name     string
		criteria models.SearchCriteria
		want     []string
	}{
		{"empty criteria keeps all", models.SearchCriteria{}, []string{"08-00-00.jpg", "12-30-00.mp4", "09-15-00.jpg", "22-45-10.png"}},
		{"type photo", models.SearchCriteria{Type: models.TypePhoto}, []string{"08-00-00.jpg", "09-15-00.jpg", "22-45-10.png"}},
		{"type video", models.SearchCriteria{Type: models.TypeVideo}, []string{"12-30-00.mp4"}},
		{"type all", models.SearchCriteria{Type: models.TypeAll}, []string{"08-00-00.jpg", "12-30-00.mp4", "09-15-00.jpg", "22-45-10.png"}},
		{"exact date", models.SearchCriteria{Date: "2024-01-15"}, []string{"08-00-00.jpg", "12-30-00.mp4"}},
		{"date range", models.SearchCriteria{StartDate: "2024-02-01", EndDate: "2024-02-28"}, []string{"09-15-00.jpg", "22-45-10.png"}},
		{"year and month", models.SearchCriteria{Year: intPtr(2024), Month: intPtr(2)}, []string{"09-15-00.jpg", "22-45-10.png"}},
		{"hour", models.SearchCriteria{Hour: intPtr(12)}, []string{"12-30-00.mp4"}},
		{"min size", models.SearchCriteria{MinSize: int64Ptr(250)}, []string{"12-30-00.mp4", "09-15-00.jpg"}},
		{"max size", models.SearchCriteria{MaxSize: int64Ptr(150)}, []string{"08-00-00.jpg"}},
		{"query on filename", models.SearchCriteria{Query: "22-45"}, []string{"22-45-10.png"}},
		{"query on date", models.SearchCriteria{Query: "2024-01"}, []string{"08-00-00.jpg", "12-30-00.mp4"}},
		{"combined AND", models.SearchCriteria{Type: models.TypePhoto, Month: intPtr(2), MinSize: int64Ptr(250)}, []string{"09-15-00.jpg"}},
		{"no match", models.SearchCriteria{Query: "nothing"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := library.Filter(records, tt.criteria)
			var names []string
			for _, rec := range got {
				names = append(names, rec.Filename)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilterExcludeRecent(t *testing.T) {
	library, _, cleanup := setupTestLibrary(t, false)
	defer cleanup()

	library.now = func() time.Time {
		return time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC)
	}

	got := library.Filter(sampleRecords(), models.SearchCriteria{ExcludeRecentDays: 7})
	var names []string
	for _, rec := range got {
		names = append(names, rec.Filename)
	}
	// Cutoff is 2024-01-29: both February records are too recent.
	assert.Equal(t, []string{"08-00-00.jpg", "12-30-00.mp4"}, names)
}

func TestSortRecords(t *testing.T) {
	records := sampleRecords()

	SortRecords(records, models.SortBySize, models.SortAsc)
	assert.Equal(t, int64(100), records[0].Size)
	assert.Equal(t, int64(5000), records[3].Size)

	SortRecords(records, models.SortBySize, models.SortDesc)
	assert.Equal(t, int64(5000), records[0].Size)

	SortRecords(records, models.SortByFilename, models.SortAsc)
	assert.Equal(t, "08-00-00.jpg", records[0].Filename)
	assert.Equal(t, "22-45-10.png", records[3].Filename)

	SortRecords(records, models.SortByTime, models.SortDesc)
	assert.Equal(t, "22:45:10", records[0].Time)
}

func TestSortRecordsStable(t *testing.T) {
	records := []models.MediaRecord{
		{Filename: "a.jpg", Date: "2024-01-15", Size: 100},
		{Filename: "b.jpg", Date: "2024-01-15", Size: 100},
		{Filename: "c.jpg", Date: "2024-01-15", Size: 100},
	}

	SortRecords(records, models.SortByDate, models.SortDesc)

	// Equal keys keep their input order.
	assert.Equal(t, "a.jpg", records[0].Filename)
	assert.Equal(t, "b.jpg", records[1].Filename)
	assert.Equal(t, "c.jpg", records[2].Filename)
}

func TestPaginate(t *testing.T) {
	records := make([]models.MediaRecord, 25)
	for i := range records {
		records[i].Size = int64(i)
	}

	tests := []struct {
		name      string
		page      int
		limit     int
		wantLen   int
		wantFirst int64
		wantPages int
		hasNext   bool
		hasPrev   bool
	}{
		{"first page", 1, 10, 10, 0, 3, true, false},
		{"middle page", 2, 10, 10, 10, 3, true, true},
		{"last partial page", 3, 10, 5, 20, 3, false, true},
		{"beyond range", 9, 10, 0, 0, 3, false, true},
		{"page zero clamps to one", 0, 10, 10, 0, 3, true, false},
		{"single page", 1, 100, 25, 0, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, p := Paginate(records, tt.page, tt.limit)
			assert.Len(t, items, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, items[0].Size)
			}
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, 25, p.TotalItems)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	items, p := Paginate(nil, 1, 10)
	assert.Empty(t, items)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestSample(t *testing.T) {
	records := sampleRecords()
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, Sample(records, 0, rng))
	assert.Empty(t, Sample(records, -1, rng))

	// Covering sample returns the original order untouched.
	all := Sample(records, len(records), rng)
	require.Len(t, all, len(records))
	for i := range records {
		assert.Equal(t, records[i].Filename, all[i].Filename)
	}
	assert.Len(t, Sample(records, 100, rng), len(records))

	// Partial sample draws without replacement.
	picked := Sample(records, 2, rng)
	require.Len(t, picked, 2)
	assert.NotEqual(t, picked[0].Filename, picked[1].Filename)
}
