package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/campus-league/internal/domain/news"
)

type NewsRepository struct {
	store *Store
}

func NewNewsRepository(store *Store) *NewsRepository {
	return &NewsRepository{store: store}
}

func (r *NewsRepository) List(_ context.Context, publishedOnly bool) ([]news.Article, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]news.Article, 0, len(s.news))
	for _, id := range sortedIDs(s.news) {
		item := s.news[id]
		if publishedOnly && !item.Published {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *NewsRepository) GetByID(_ context.Context, articleID int64) (news.Article, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.news[articleID]
	return item, ok, nil
}

func (r *NewsRepository) Create(_ context.Context, item news.Article) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastNewsID++
	item.ID = s.lastNewsID
	s.news[item.ID] = item
	return item.ID, nil
}

func (r *NewsRepository) Update(_ context.Context, item news.Article) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.news[item.ID]
	if !ok {
		return false, nil
	}
	item.CreatedAt = current.CreatedAt
	s.news[item.ID] = item
	return true, nil
}

func (r *NewsRepository) Delete(_ context.Context, articleID int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.news[articleID]; !ok {
		return false, nil
	}
	delete(s.news, articleID)
	return true, nil
}
