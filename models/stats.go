package models

// DateActivity is one point of the per-date activity series.
type DateActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type WeekdayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type ChartData struct {
	ActivityTimeline   []DateActivity `json:"activity_timeline"`
	HourlyDistribution []HourCount    `json:"hourly_distribution"`
	WeeklyDistribution []WeekdayCount `json:"weekly_distribution"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Stats aggregates a record list the way the dashboard consumes it.
type Stats struct {
	TotalFiles          int            `json:"total_files"`
	TotalPhotos         int            `json:"total_photos"`
	TotalVideos         int            `json:"total_videos"`
	TotalSize           int64          `json:"total_size"`
	TotalSizeMB         float64        `json:"total_size_mb"`
	DatesWithContent    []string       `json:"dates_with_content"`
	ActivityByDate      []DateActivity `json:"activity_by_date"`
	ActivityByHour      [24]int        `json:"activity_by_hour"`
	ActivityByDayOfWeek [7]int         `json:"activity_by_day_of_week"` // 0=Sunday
	MonthlyActivity     map[string]int `json:"monthly_activity"`        // YYYY-MM -> count
	EarliestDate        string         `json:"earliest_date,omitempty"`
	LatestDate          string         `json:"latest_date,omitempty"`
	AvgPhotosPerDay     float64        `json:"avg_photos_per_day"`
	MostActiveHour      int            `json:"most_active_hour"`
	MostActiveDay       int            `json:"most_active_day"`
	Filtered            bool           `json:"filtered"`
	DateRange           *DateRange     `json:"date_range,omitempty"`
	TypeFilter          MediaType      `json:"type_filter,omitempty"`
	Charts              *ChartData     `json:"charts,omitempty"`
}

// CalendarFile is the trimmed per-file view embedded in calendar days.
type CalendarFile struct {
	Filename string    `json:"filename"`
	Type     MediaType `json:"type"`
	Time     string    `json:"timestamp"`
	Path     string    `json:"path"`
}

// CalendarDay is one day cell of the month view.
type CalendarDay struct {
	Date           string         `json:"date"`
	Day            int            `json:"day"`
	HasContent     bool           `json:"has_content"`
	FileCount      int            `json:"file_count"`
	Photos         int            `json:"photos"`
	Videos         int            `json:"videos"`
	Files          []CalendarFile `json:"files"`
	FirstPhotoTime string         `json:"first_photo_time,omitempty"` // HH:MM
	LastPhotoTime  string         `json:"last_photo_time,omitempty"`  // HH:MM
	TimeSpanHours  float64        `json:"time_span_hours"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ProductiveHour struct {
	Hour  string `json:"hour"` // "HH:00"
	Count int    `json:"count"`
}

// MonthStats summarizes a calendar month.
type MonthStats struct {
	TotalDays            int              `json:"total_days"`
	ActiveDays           int              `json:"active_days"`
	TotalFiles           int              `json:"total_files"`
	TotalPhotos          int              `json:"total_photos"`
	TotalVideos          int              `json:"total_videos"`
	MostActiveDay        *DayCount        `json:"most_active_day"`
	LeastActiveDay       *DayCount        `json:"least_active_day"`
	AvgFilesPerActiveDay float64          `json:"average_files_per_active_day"`
	MostProductiveHours  []ProductiveHour `json:"most_productive_hours"`
	ActivityByDayOfWeek  [7]int           `json:"activity_by_day_of_week"`
}

type MonthRef struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"` // "January 2024"
}

type MonthNavigation struct {
	Previous MonthRef `json:"previous"`
	Current  MonthRef `json:"current"`
	Next     MonthRef `json:"next"`
}

type MonthInfo struct {
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	MonthName      string `json:"month_name"`
	DaysInMonth    int    `json:"days_in_month"`
	FirstDayOfWeek int    `json:"first_day_of_week"` // 0=Sunday
}

// Calendar is the complete month view response body.
type Calendar struct {
	MonthInfo  MonthInfo       `json:"month_info"`
	Navigation MonthNavigation `json:"navigation"`
	Days       []CalendarDay   `json:"calendar_data"`
	Statistics MonthStats      `json:"statistics"`
}

// TimeSpan expresses the distance between first and last capture of a day.
type TimeSpan struct {
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	TotalMinutes int `json:"total_minutes"`
}

type DaySummary struct {
	TotalFiles   int       `json:"total_files"`
	Photos       int       `json:"photos"`
	Videos       int       `json:"videos"`
	TotalSize    int64     `json:"total_size"`
	TotalSizeMB  float64   `json:"total_size_mb"`
	FirstCapture string    `json:"first_capture"`
	LastCapture  string    `json:"last_capture"`
	TimeSpan     *TimeSpan `json:"time_span"`
}

// FeedEntry is one date of the feed: its files plus a day summary.
type FeedEntry struct {
	Date      string        `json:"date"`
	DayOfWeek string        `json:"day_of_week"`
	Files     []MediaRecord `json:"files"`
	Summary   DaySummary    `json:"summary"`
}

// ActivityDay is one day of the recent-activity strip.
type ActivityDay struct {
	Date       string `json:"date"`
	Count      int    `json:"count"`
	HasContent bool   `json:"has_content"`
}

// DateInfo is one active date with its per-date counts.
type DateInfo struct {
	Date      string `json:"date"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	FileCount int    `json:"file_count"`
	Photos    int    `json:"photos"`
	Videos    int    `json:"videos"`
}
