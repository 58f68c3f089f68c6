package httpapi

import (
	"net/http"

	"github.com/riskibarqy/campus-league/internal/domain/news"
)

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	articles, err := h.newsService.ListPublished(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsListToDTO(articles))
}

func (h *Handler) ListAllNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllNews")
	defer span.End()

	articles, err := h.newsService.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list all news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsListToDTO(articles))
}

func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNews")
	defer span.End()

	newsID, err := pathID(r, "newsID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.newsService.GetPublished(ctx, newsID)
	if err != nil {
		h.logger.WarnContext(ctx, "get news failed", "news_id", newsID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(item))
}

func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNews")
	defer span.End()

	var req newsRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.newsService.Create(ctx, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "create news failed", "title", req.Title, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, newsToDTO(created))
}

func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateNews")
	defer span.End()

	newsID, err := pathID(r, "newsID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req newsRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.newsService.Update(ctx, newsID, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "update news failed", "news_id", newsID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(updated))
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteNews")
	defer span.End()

	newsID, err := pathID(r, "newsID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.newsService.Delete(ctx, newsID); err != nil {
		h.logger.WarnContext(ctx, "delete news failed", "news_id", newsID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"id": newsID})
}

func newsListToDTO(articles []news.Article) []newsDTO {
	items := make([]newsDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, newsToDTO(a))
	}
	return items
}
