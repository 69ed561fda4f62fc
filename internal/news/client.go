package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/cache"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/worker"
)

// ErrNoCredential is returned when no API key is configured
var ErrNoCredential = errors.New("news: API key not configured")

// Client checks whether a claim is being reported by mainstream news
// sources via a news-search index (NewsAPI /v2/everything).
type Client struct {
	cfg        model.NewsConfig
	httpClient *http.Client
	store      cache.Cache
	limiter    *worker.Limiter
}

// NewClient creates a news client. store and limiter may be nil.
func NewClient(cfg model.NewsConfig, httpClient *http.Client, store cache.Cache, limiter *worker.Limiter) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		store:      store,
		limiter:    limiter,
	}
}

// searchResponse mirrors the index's wire format as consumed
type searchResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// VerifyPresence searches for coverage of the query and classifies each
// article against the trusted-domain allowlist. One request per call;
// the caller passes a bounded query prefix. A successful lookup that
// finds nothing returns a zero-article coverage, not nil.
func (c *Client) VerifyPresence(ctx context.Context, query string) (*model.NewsCoverage, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrNoCredential
	}

	body, err := c.search(ctx, query)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("news: decode response: %w", err)
	}
	if parsed.Status != "" && parsed.Status != "ok" {
		return nil, fmt.Errorf("news: index error status %q", parsed.Status)
	}

	coverage := &model.NewsCoverage{
		TotalArticles: len(parsed.Articles),
	}

	for _, article := range parsed.Articles {
		if !c.isTrusted(article.URL) {
			continue
		}
		coverage.TrustedArticles = append(coverage.TrustedArticles, model.TrustedArticle{
			Source:      strings.ToLower(article.Source.Name),
			Title:       article.Title,
			URL:         article.URL,
			PublishedAt: article.PublishedAt,
		})
	}

	coverage.HasTrustedCoverage = len(coverage.TrustedArticles) > 0
	coverage.Score = PresenceScore(coverage.TotalArticles, len(coverage.TrustedArticles))

	return coverage, nil
}

// isTrusted reports whether the article URL belongs to the allowlist
func (c *Client) isTrusted(articleURL string) bool {
	for _, domain := range c.cfg.TrustedDomains {
		if strings.Contains(articleURL, domain) {
			return true
		}
	}
	return false
}

// search issues the index request, consulting the cache first
func (c *Client) search(ctx context.Context, query string) ([]byte, error) {
	key := cache.Key("news", query)
	if c.store != nil {
		if body, found := c.store.Get(key); found {
			return body, nil
		}
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", c.cfg.APIKey)
	params.Set("language", c.cfg.Language)
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", fmt.Sprintf("%d", c.cfg.PageSize))

	reqURL := c.cfg.BaseURL + "?" + params.Encode()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, c.cfg.BaseURL); err != nil {
			return nil, fmt.Errorf("news: rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("news: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news: request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("news: read response: %w", err)
	}

	if c.store != nil {
		_ = c.store.Set(key, body, 0)
	}

	return body, nil
}

// PresenceScore maps coverage counts onto a 0-100 news-presence score:
// broad trusted corroboration scores highest, total silence lowest.
func PresenceScore(total, trusted int) int {
	switch {
	case trusted >= 3:
		return 100
	case trusted >= 1:
		return 70
	case total > 0:
		return 40
	default:
		return 0
	}
}
