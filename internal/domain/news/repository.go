package news

import "context"

type Repository interface {
	List(ctx context.Context, publishedOnly bool) ([]Article, error)
	GetByID(ctx context.Context, articleID int64) (Article, bool, error)
	Create(ctx context.Context, item Article) (int64, error)
	Update(ctx context.Context, item Article) (bool, error)
	Delete(ctx context.Context, articleID int64) (bool, error)
}
