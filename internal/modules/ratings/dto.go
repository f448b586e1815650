package ratings

type RateRequest struct {
	Rating int `json:"rating" binding:"required"`
}

type SummaryResponse struct {
	BookID  int64   `json:"book_id"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
