package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/campus-league/internal/domain/news"
)

type NewsService struct {
	repo news.Repository
	now  func() time.Time
}

func NewNewsService(repo news.Repository) *NewsService {
	return &NewsService{
		repo: repo,
		now:  time.Now,
	}
}

// ListPublished returns published articles, newest first.
func (s *NewsService) ListPublished(ctx context.Context) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.ListPublished")
	defer span.End()

	items, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list published news: %w", err)
	}
	return items, nil
}

func (s *NewsService) ListAll(ctx context.Context) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.ListAll")
	defer span.End()

	items, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}

// GetPublished hides drafts behind ErrNotFound.
func (s *NewsService) GetPublished(ctx context.Context, articleID int64) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.GetPublished")
	defer span.End()

	item, err := s.getArticle(ctx, articleID)
	if err != nil {
		return news.Article{}, err
	}
	if !item.Published {
		return news.Article{}, fmt.Errorf("%w: news=%d", ErrNotFound, articleID)
	}
	return item, nil
}

func (s *NewsService) Create(ctx context.Context, item news.Article) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Create")
	defer span.End()

	item.ID = 0
	item.ApplyDefaults()
	if err := item.Validate(); err != nil {
		return news.Article{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	item.CreatedAt = s.now().UTC()

	id, err := s.repo.Create(ctx, item)
	if err != nil {
		return news.Article{}, fmt.Errorf("create news: %w", err)
	}
	item.ID = id

	return item, nil
}

func (s *NewsService) Update(ctx context.Context, articleID int64, item news.Article) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Update")
	defer span.End()

	current, err := s.getArticle(ctx, articleID)
	if err != nil {
		return news.Article{}, err
	}

	item.ID = articleID
	item.CreatedAt = current.CreatedAt
	item.ApplyDefaults()
	if err := item.Validate(); err != nil {
		return news.Article{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return news.Article{}, fmt.Errorf("update news: %w", err)
	}
	if !updated {
		return news.Article{}, fmt.Errorf("%w: news=%d", ErrNotFound, articleID)
	}

	return item, nil
}

func (s *NewsService) Delete(ctx context.Context, articleID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.Delete")
	defer span.End()

	if articleID <= 0 {
		return fmt.Errorf("%w: news id is required", ErrInvalidInput)
	}

	deleted, err := s.repo.Delete(ctx, articleID)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: news=%d", ErrNotFound, articleID)
	}
	return nil
}

func (s *NewsService) getArticle(ctx context.Context, articleID int64) (news.Article, error) {
	if articleID <= 0 {
		return news.Article{}, fmt.Errorf("%w: news id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, articleID)
	if err != nil {
		return news.Article{}, fmt.Errorf("get news by id: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: news=%d", ErrNotFound, articleID)
	}
	return item, nil
}
