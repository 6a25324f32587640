// ABOUTME: News handlers for topic feeds and single-article analysis
// ABOUTME: Each topic endpoint maps to a fixed source list on the news service

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"lexassist-api/core/domain"
	coreerrors "lexassist-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// NewsService interface defines the methods needed from the news service
type NewsService interface {
	General(ctx context.Context) ([]domain.Article, error)
	SouthIndia(ctx context.Context) ([]domain.Article, error)
	India(ctx context.Context) ([]domain.Article, error)
	World(ctx context.Context) ([]domain.Article, error)
	ArticleDetails(ctx context.Context, index int) (*domain.Article, string, error)
}

// NewsHandler handles news aggregation HTTP requests
type NewsHandler struct {
	service NewsService
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(service NewsService) *NewsHandler {
	return &NewsHandler{
		service: service,
	}
}

// RegisterRoutes registers all news routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getGeneralNews",
		Method:      http.MethodGet,
		Path:        "/api/news/general",
		Summary:     "Merged headlines from the default sources",
		Tags:        []string{"News"},
	}, h.General)

	huma.Register(api, huma.Operation{
		OperationID: "getSouthIndiaNews",
		Method:      http.MethodGet,
		Path:        "/api/news/south-india",
		Summary:     "Regional coverage of the southern states",
		Tags:        []string{"News"},
	}, h.SouthIndia)

	huma.Register(api, huma.Operation{
		OperationID: "getIndiaNews",
		Method:      http.MethodGet,
		Path:        "/api/news/india",
		Summary:     "Country-scoped top headlines",
		Tags:        []string{"News"},
	}, h.India)

	huma.Register(api, huma.Operation{
		OperationID: "getWorldNews",
		Method:      http.MethodGet,
		Path:        "/api/news/world",
		Summary:     "Merged international headlines",
		Tags:        []string{"News"},
	}, h.World)

	huma.Register(api, huma.Operation{
		OperationID: "getArticleDetails",
		Method:      http.MethodGet,
		Path:        "/api/news/{article_id}",
		Summary:     "One article by position with an LLM analysis attached",
		Tags:        []string{"News"},
	}, h.ArticleDetails)
}

// ArticleListOutput defines the output for the topic endpoints
type ArticleListOutput struct {
	Body struct {
		Articles []domain.Article `json:"articles"`
	}
}

func articleList(articles []domain.Article) *ArticleListOutput {
	out := &ArticleListOutput{}
	out.Body.Articles = articles
	return out
}

// General handles the GET /api/news/general endpoint
func (h *NewsHandler) General(ctx context.Context, _ *struct{}) (*ArticleListOutput, error) {
	articles, err := h.service.General(ctx)
	if err != nil {
		return nil, upstreamError(err, "Failed to fetch general news")
	}
	return articleList(articles), nil
}

// SouthIndia handles the GET /api/news/south-india endpoint
func (h *NewsHandler) SouthIndia(ctx context.Context, _ *struct{}) (*ArticleListOutput, error) {
	articles, err := h.service.SouthIndia(ctx)
	if err != nil {
		return nil, upstreamError(err, "Failed to fetch South India news")
	}
	return articleList(articles), nil
}

// India handles the GET /api/news/india endpoint
func (h *NewsHandler) India(ctx context.Context, _ *struct{}) (*ArticleListOutput, error) {
	articles, err := h.service.India(ctx)
	if err != nil {
		return nil, upstreamError(err, "Failed to fetch India news")
	}
	return articleList(articles), nil
}

// World handles the GET /api/news/world endpoint
func (h *NewsHandler) World(ctx context.Context, _ *struct{}) (*ArticleListOutput, error) {
	articles, err := h.service.World(ctx)
	if err != nil {
		return nil, upstreamError(err, "Failed to fetch world news")
	}
	return articleList(articles), nil
}

// ArticleDetailsInput defines the input for the ArticleDetails operation.
// The identifier is accepted as a string and parsed in the handler: a
// non-numeric path segment is an unknown article, not a malformed request.
type ArticleDetailsInput struct {
	ArticleID string `path:"article_id" doc:"Position of the article in the merged, sorted list"`
}

// ArticleDetailsOutput is an Article with the model's analysis attached
type ArticleDetailsOutput struct {
	Body struct {
		domain.Article
		DetailedAnalysis string `json:"detailedAnalysis"`
	}
}

// ArticleDetails handles the GET /api/news/{article_id} endpoint
func (h *NewsHandler) ArticleDetails(ctx context.Context, input *ArticleDetailsInput) (*ArticleDetailsOutput, error) {
	index, err := strconv.Atoi(input.ArticleID)
	if err != nil {
		return nil, toHumaError(&coreerrors.NotFoundError{Resource: "article", ID: input.ArticleID})
	}

	article, analysis, err := h.service.ArticleDetails(ctx, index)
	if err != nil {
		return nil, upstreamError(err, "Failed to fetch article details")
	}

	out := &ArticleDetailsOutput{}
	out.Body.Article = *article
	out.Body.DetailedAnalysis = analysis
	return out, nil
}
