package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/campus-league/internal/domain/news"
	qb "github.com/riskibarqy/campus-league/internal/platform/querybuilder"
)

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

var newsColumns = []string{"id", "title", "content", "author", "category", "image_url", "published", "created_at"}

func (r *NewsRepository) List(ctx context.Context, publishedOnly bool) ([]news.Article, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if publishedOnly {
		conditions = append(conditions, qb.Eq("published", true))
	}

	query, args, err := qb.Select(newsColumns...).From("news").
		Where(conditions...).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select news query: %w", err)
	}

	var rows []newsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select news: %w", err)
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, newsFromModel(row))
	}
	return out, nil
}

func (r *NewsRepository) GetByID(ctx context.Context, articleID int64) (news.Article, bool, error) {
	query, args, err := qb.Select(newsColumns...).From("news").
		Where(qb.Eq("id", articleID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return news.Article{}, false, fmt.Errorf("build select news by id query: %w", err)
	}

	var row newsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return news.Article{}, false, nil
		}
		return news.Article{}, false, fmt.Errorf("select news by id: %w", err)
	}
	return newsFromModel(row), true, nil
}

func (r *NewsRepository) Create(ctx context.Context, item news.Article) (int64, error) {
	query, args, err := qb.InsertModel("news", newsToModel(item), []string{"id"}, "id")
	if err != nil {
		return 0, fmt.Errorf("build insert news query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert news: %w", err)
	}
	return id, nil
}

func (r *NewsRepository) Update(ctx context.Context, item news.Article) (bool, error) {
	builder, err := qb.UpdateModel("news", newsToModel(item), []string{"id", "created_at"})
	if err != nil {
		return false, fmt.Errorf("build update news query: %w", err)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update news query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update news: %w", err)
	}
	return rowsAffected(result, "update news")
}

func (r *NewsRepository) Delete(ctx context.Context, articleID int64) (bool, error) {
	query, args, err := qb.Update("news").
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("id", articleID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build soft delete news query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("soft delete news: %w", err)
	}
	return rowsAffected(result, "soft delete news")
}
