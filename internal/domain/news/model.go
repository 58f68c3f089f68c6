package news

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultAuthor   = "Admin"
	DefaultCategory = "General"
	MaxTitleLength  = 200
)

// Article is a league news post.
type Article struct {
	ID        int64
	Title     string
	Content   string
	Author    string
	Category  string
	ImageURL  string
	Published bool
	CreatedAt time.Time
}

func (a *Article) ApplyDefaults() {
	a.Title = strings.TrimSpace(a.Title)
	a.Author = strings.TrimSpace(a.Author)
	a.Category = strings.TrimSpace(a.Category)
	a.ImageURL = strings.TrimSpace(a.ImageURL)
	if a.Author == "" {
		a.Author = DefaultAuthor
	}
	if a.Category == "" {
		a.Category = DefaultCategory
	}
}

func (a Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("news title is required")
	}
	if len(a.Title) > MaxTitleLength {
		return fmt.Errorf("news title must be at most %d characters", MaxTitleLength)
	}
	return nil
}
