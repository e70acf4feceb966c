package wordimport

import "time"

// Entry is one word in an import file. Each *.json file holds an array of
// entries.
type Entry struct {
	En        string     `json:"en"`
	Ja        string     `json:"ja"`
	Example   *string    `json:"example,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Category  string     `json:"category,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
