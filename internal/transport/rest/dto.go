package rest

import (
	"time"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

type wordResponse struct {
	ID             int64      `json:"id"`
	En             string     `json:"en"`
	Ja             string     `json:"ja"`
	Example        *string    `json:"example"`
	Notes          *string    `json:"notes"`
	CategoryID     *int64     `json:"category_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	ReviewCount    int        `json:"review_count"`
	CorrectCount   int        `json:"correct_count"`
	MasteryLevel   int        `json:"mastery_level"`
}

func toWordResponse(w *domain.Word) wordResponse {
	return wordResponse{
		ID:             w.ID,
		En:             w.En,
		Ja:             w.Ja,
		Example:        w.Example,
		Notes:          w.Notes,
		CategoryID:     w.CategoryID,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
		LastReviewedAt: w.LastReviewedAt,
		ReviewCount:    w.ReviewCount,
		CorrectCount:   w.CorrectCount,
		MasteryLevel:   w.MasteryLevel,
	}
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, 0, len(words))
	for i := range words {
		out = append(out, toWordResponse(&words[i]))
	}
	return out
}

type categoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Color       *string   `json:"color"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Color:       c.Color,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

type statsResponse struct {
	TotalWords    int `json:"total_words"`
	MasteredWords int `json:"mastered_words"`
	ReviewNeeded  int `json:"review_needed"`
	TotalSessions int `json:"total_sessions"`
}

type exampleResponse struct {
	En string  `json:"en"`
	Ja *string `json:"ja,omitempty"`
}
