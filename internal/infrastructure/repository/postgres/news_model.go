package postgres

import (
	"time"

	"github.com/riskibarqy/campus-league/internal/domain/news"
)

type newsTableModel struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Author    string    `db:"author"`
	Category  string    `db:"category"`
	ImageURL  string    `db:"image_url"`
	Published bool      `db:"published"`
	CreatedAt time.Time `db:"created_at"`
}

func newsToModel(item news.Article) newsTableModel {
	return newsTableModel{
		ID:        item.ID,
		Title:     item.Title,
		Content:   item.Content,
		Author:    item.Author,
		Category:  item.Category,
		ImageURL:  item.ImageURL,
		Published: item.Published,
		CreatedAt: item.CreatedAt,
	}
}

func newsFromModel(row newsTableModel) news.Article {
	return news.Article{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		Author:    row.Author,
		Category:  row.Category,
		ImageURL:  row.ImageURL,
		Published: row.Published,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
