// ABOUTME: News service merges and ranks articles from multiple upstream sources
// ABOUTME: Provides topic-scoped fetches and LLM analysis of a selected article

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"lexassist-api/core/domain"
	coreerrors "lexassist-api/core/errors"
	"lexassist-api/core/interfaces"
)

const providerName = "NewsAPI"

// defaultSources is the fanout set for general news and article lookup
var defaultSources = []string{"the-times-of-india", "the-hindu", "bbc-news", "cnn", "reuters"}

// southIndiaSources and southIndiaQuery scope the regional topic
var (
	southIndiaSources = []string{"the-hindu", "the-times-of-india"}
	southIndiaQuery   = "(Tamil Nadu OR Kerala OR Karnataka OR Andhra Pradesh OR Telangana)"
	worldSources      = []string{"bbc-news", "cnn", "reuters"}
)

// Config holds provider connection settings
type Config struct {
	// BaseURL is the provider API root, e.g. https://newsapi.org/v2
	BaseURL string

	// APIKey is the provider API key, sent as a query parameter
	APIKey string
}

// Service aggregates news from the upstream provider
type Service struct {
	deps  interfaces.Dependencies
	model interfaces.ChatModel
	cfg   Config

	// now is injected for tests that pin the 30-day window
	now func() time.Time
}

// NewService creates a new news service instance
func NewService(deps interfaces.Dependencies, model interfaces.ChatModel, cfg Config) *Service {
	return &Service{
		deps:  deps,
		model: model,
		cfg:   cfg,
		now:   time.Now,
	}
}

// apiArticle is the provider's article shape; absent fields decode to ""
type apiArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// FetchNews issues one provider call per source (or a single call when no
// sources are given and a country is), merges the results, normalizes them
// into Articles, and stable-sorts by publish time descending. Ties keep
// their discovery order.
func (s *Service) FetchNews(ctx context.Context, sources []string, query, country string) ([]domain.Article, error) {
	calls := sources
	if len(calls) == 0 {
		calls = []string{""}
	}

	var collected []apiArticle
	for _, source := range calls {
		batch, err := s.fetchOne(ctx, source, query, country)
		if err != nil {
			return nil, err
		}
		collected = append(collected, batch...)
	}

	articles := make([]domain.Article, 0, len(collected))
	for _, a := range collected {
		articles = append(articles, domain.Article{
			ID:          domain.ArticleID(a.URL),
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			URLToImage:  a.URLToImage,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
		})
	}

	// Provider timestamps are RFC 3339, so string comparison orders them
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt > articles[j].PublishedAt
	})

	return articles, nil
}

// fetchOne performs a single provider round trip for one source
func (s *Service) fetchOne(ctx context.Context, source, query, country string) ([]apiArticle, error) {
	endpoint := s.cfg.BaseURL + "/top-headlines"
	if query != "" {
		endpoint = s.cfg.BaseURL + "/everything"
	}

	params := url.Values{
		"apiKey":   {s.cfg.APIKey},
		"language": {"en"},
		"from":     {s.now().AddDate(0, 0, -30).Format("2006-01-02")},
		"sortBy":   {"publishedAt"},
	}
	if query != "" {
		params.Set("q", query)
	}
	if country != "" {
		params.Set("country", country)
	}
	if source != "" {
		params.Set("sources", source)
	}

	resp, err := s.deps.HTTPClient.Get(ctx, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:     providerName,
			Message: err.Error(),
		}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:     providerName,
			Message: fmt.Sprintf("reading response: %s", err.Error()),
		}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ExternalAPIError{
			API:        providerName,
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload struct {
		Articles []apiArticle `json:"articles"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:     providerName,
			Message: fmt.Sprintf("invalid JSON in response: %s", err.Error()),
		}
	}

	return payload.Articles, nil
}

// General returns merged headlines from the five default sources
func (s *Service) General(ctx context.Context) ([]domain.Article, error) {
	return s.FetchNews(ctx, defaultSources, "", "")
}

// SouthIndia returns regional coverage from the two southern dailies
func (s *Service) SouthIndia(ctx context.Context) ([]domain.Article, error) {
	return s.FetchNews(ctx, southIndiaSources, southIndiaQuery, "")
}

// India returns country-scoped top headlines
func (s *Service) India(ctx context.Context) ([]domain.Article, error) {
	return s.FetchNews(ctx, nil, "", "in")
}

// World returns merged international headlines
func (s *Service) World(ctx context.Context) ([]domain.Article, error) {
	return s.FetchNews(ctx, worldSources, "", "")
}

// ArticleDetails re-fetches the default merged list, selects an article by
// position, and attaches an LLM analysis of it. The list is rebuilt from
// live data, so indexes are only meaningful within one fetched list; the
// Article.ID field lets clients detect drift.
func (s *Service) ArticleDetails(ctx context.Context, index int) (*domain.Article, string, error) {
	articles, err := s.FetchNews(ctx, defaultSources, "", "")
	if err != nil {
		return nil, "", err
	}

	if index < 0 || index >= len(articles) {
		return nil, "", &coreerrors.NotFoundError{Resource: "article", ID: strconv.Itoa(index)}
	}

	article := articles[index]
	analysis, err := s.model.Complete(ctx, analystSystemPrompt, fmt.Sprintf("Query: %s", articleAnalysisPrompt(article)))
	if err != nil {
		return nil, "", err
	}

	return &article, analysis, nil
}
