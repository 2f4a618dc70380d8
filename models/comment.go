package models

// Comment is the single mutable document of the system: one free-text
// note per diary date, stored as a JSON file next to the media tree.
type Comment struct {
	Date      string `json:"date"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"` // ISO-8601
	UpdatedAt string `json:"updated_at"`
	Version   int    `json:"version"`
}

type CommentStats struct {
	TotalComments    int     `json:"total_comments"`
	TotalCharacters  int     `json:"total_characters"`
	AvgLength        float64 `json:"avg_length"`
	FirstCommentDate string  `json:"first_comment_date,omitempty"`
	LastCommentDate  string  `json:"last_comment_date,omitempty"`
	MostRecentUpdate string  `json:"most_recent_update,omitempty"`
}
