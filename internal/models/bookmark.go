package models

import (
	"strings"
	"time"
)

// Bookmark is one cataloged resource row in the spreadsheet.
type Bookmark struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// BookmarkPatch carries the fields of a partial update. A nil field leaves
// the stored value untouched.
type BookmarkPatch struct {
	Title    *string   `json:"title,omitempty"`
	URL      *string   `json:"url,omitempty"`
	Category *string   `json:"category,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
}

// DefaultCategories are offered in the dashboard form; the category set
// stays open and free text is accepted.
var DefaultCategories = []string{
	"Offensive Security",
	"Finance",
	"Real Estate",
	"YouTube",
	"Tools",
	"Articles",
	"Documentation",
}

// SplitTags parses the comma-joined tags cell used by the spreadsheet.
func SplitTags(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	if len(tags) == 0 {
		return nil
	}

	return tags
}

// JoinTags renders tags back into the comma-joined cell format.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
