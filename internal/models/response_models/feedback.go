package response_models

type FeedbackItem struct {
	ID            string `json:"id"`
	RespondentID  string `json:"respondent_id"`
	DestinationID string `json:"destination_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// FeedbackPage is one page of feedback plus totals over the whole filter.
type FeedbackPage struct {
	Items     []FeedbackItem `json:"items"`
	Total     int64          `json:"total"`
	AvgRating float64        `json:"avg_rating"`
	Page      int            `json:"page"`
	PageSize  int            `json:"page_size"`
}
