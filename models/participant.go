// Package models file: models/participant.go
package models

// Categories is the fixed set of performance categories a participant
// may register under. The API rejects anything outside this list.
var Categories = []string{
	"Poetry",
	"Folk Songs",
	"Original Songs",
	"Rendition",
	"Use of African Proverbs in Spoken Word",
}

// Participant represents an event participant.
type Participant struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
}

// ValidCategory reports whether category is one of the allowed entries.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
