package models

type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByTime     SortKey = "time"
	SortBySize     SortKey = "size"
	SortByFilename SortKey = "filename"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchCriteria is the explicit filter set applied to record lists.
// All fields are optional and combined with AND semantics. Zero values
// mean "not set"; pointer fields distinguish 0 from absent.
type SearchCriteria struct {
	Query     string
	Type      MediaType
	Date      string // exact YYYY-MM-DD
	StartDate string // inclusive, requires EndDate
	EndDate   string
	Year      *int
	Month     *int
	Day       *int
	Hour      *int
	MinSize   *int64
	MaxSize   *int64

	// ExcludeRecentDays drops records dated within the last N days.
	ExcludeRecentDays int
}

// Empty reports whether no filter is set at all.
func (c SearchCriteria) Empty() bool {
	return c.Query == "" && (c.Type == "" || c.Type == TypeAll) &&
		c.Date == "" && c.StartDate == "" && c.EndDate == "" &&
		c.Year == nil && c.Month == nil && c.Day == nil && c.Hour == nil &&
		c.MinSize == nil && c.MaxSize == nil && c.ExcludeRecentDays == 0
}
