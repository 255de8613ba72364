// Package comment provides the visitor comment model returned by the backend.
package comment

import (
	"strconv"
	"strings"
)

const (
	// DefaultMaxComments is the comment limit used when none is chosen.
	DefaultMaxComments = 5
	// MaxCommentsLimit caps what a visitor can ask for in one page load.
	MaxCommentsLimit = 100
)

// Comment is one visitor comment, optionally with an uploaded image.
type Comment struct {
	Name     string `json:"name"`
	Comment  string `json:"comment"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// HasImage reports whether the comment references an uploaded image.
func (c Comment) HasImage() bool {
	return strings.TrimSpace(c.ImageURL) != ""
}

// Line returns the "name: comment" text shown for the comment.
func (c Comment) Line() string {
	return c.Name + ": " + c.Comment
}

// ParseMaxComments interprets the numComments input value.
// Blank or non-numeric input yields def; numbers are clamped to [0, MaxCommentsLimit].
func ParseMaxComments(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return ClampMaxComments(n)
}

// ClampMaxComments bounds n to [0, MaxCommentsLimit].
func ClampMaxComments(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxCommentsLimit {
		return MaxCommentsLimit
	}
	return n
}
