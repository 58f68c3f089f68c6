package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/campus-league/internal/domain/news"
	newsmock "github.com/riskibarqy/campus-league/internal/mocks/domain/news"
	"github.com/stretchr/testify/mock"
)

func TestNewsService_Create_SetsDefaultsAndClock(t *testing.T) {
	t.Parallel()

	repo := newsmock.NewRepository(t)
	service := NewNewsService(repo)
	fixed := time.Date(2026, 5, 2, 8, 30, 0, 0, time.FixedZone("WIB", 7*3600))
	service.now = func() time.Time { return fixed }

	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(v news.Article) bool {
			return v.Author == news.DefaultAuthor &&
				v.Category == news.DefaultCategory &&
				v.CreatedAt.Equal(fixed) &&
				v.CreatedAt.Location() == time.UTC
		})).
		Return(int64(4), nil).
		Once()

	got, err := service.Create(context.Background(), news.Article{Title: "Opening day", Published: true})
	if err != nil {
		t.Fatalf("create news: %v", err)
	}
	if got.ID != 4 {
		t.Fatalf("unexpected id: %d", got.ID)
	}
}

func TestNewsService_GetPublished_HidesDrafts(t *testing.T) {
	t.Parallel()

	repo := newsmock.NewRepository(t)
	service := NewNewsService(repo)

	repo.
		On("GetByID", mock.Anything, int64(9)).
		Return(news.Article{ID: 9, Title: "Draft", Published: false}, true, nil).
		Once()

	if _, err := service.GetPublished(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewsService_Update_KeepsCreatedAt(t *testing.T) {
	t.Parallel()

	repo := newsmock.NewRepository(t)
	service := NewNewsService(repo)
	created := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	repo.
		On("GetByID", mock.Anything, int64(2)).
		Return(news.Article{ID: 2, Title: "Old", CreatedAt: created}, true, nil).
		Once()
	repo.
		On("Update", mock.Anything, mock.MatchedBy(func(v news.Article) bool {
			return v.ID == 2 && v.Title == "New" && v.CreatedAt.Equal(created)
		})).
		Return(true, nil).
		Once()

	got, err := service.Update(context.Background(), 2, news.Article{Title: "New"})
	if err != nil {
		t.Fatalf("update news: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at changed: %v", got.CreatedAt)
	}
}

func TestNewsService_ListPublished_PropagatesError(t *testing.T) {
	t.Parallel()

	repo := newsmock.NewRepository(t)
	service := NewNewsService(repo)
	storeErr := errors.New("db down")

	repo.On("List", mock.Anything, true).Return(nil, storeErr).Once()

	if _, err := service.ListPublished(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
