package factcheck

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
	"github.com/vivekminipuri/AI-fake-news-detector/internal/match"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/worker"
)

// ErrNoCredential is returned when no API key is configured. The caller
// treats it like any other unavailability: the source is skipped.
var ErrNoCredential = errors.New("factcheck: API key not configured")

// Client queries an external claim-review registry (Google Fact Check
// Tools claims:search) and validates candidates by Jaccard similarity.
type Client struct {
	cfg        model.FactCheckConfig
	httpClient *http.Client
	store      cache.Cache
	limiter    *worker.Limiter
}

// NewClient creates a fact-check client. store and limiter may be nil.
func NewClient(cfg model.FactCheckConfig, httpClient *http.Client, store cache.Cache, limiter *worker.Limiter) *Client {
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

// claimsResponse mirrors the registry's wire format as consumed
type claimsResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
			} `json:"publisher"`
			TextualRating string `json:"textualRating"`
			URL           string `json:"url"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// VerifyClaim searches the registry for reviews of the query and returns
// the highest-similarity candidate, or (nil, nil) when no candidate
// clears the similarity threshold. A single request is issued per call;
// the caller is expected to pass a bounded query prefix.
func (c *Client) VerifyClaim(ctx context.Context, query string) (*model.FactCheckMatch, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrNoCredential
	}

	body, err := c.search(ctx, query)
	if err != nil {
		return nil, err
	}

	var parsed claimsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("factcheck: decode response: %w", err)
	}

	// Pick the candidate most similar to the query
	bestIdx := -1
	bestSim := 0.0
	for i, claim := range parsed.Claims {
		sim := match.Similarity(query, claim.Text)
		if sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestSim < c.cfg.SimilarityThreshold {
		return nil, nil
	}

	best := parsed.Claims[bestIdx]
	if len(best.ClaimReview) == 0 {
		return nil, nil
	}
	review := best.ClaimReview[0]

	publisher := review.Publisher.Name
	if publisher == "" {
		publisher = "Unknown"
	}
	rating := review.TextualRating
	if rating == "" {
		rating = "Unknown"
	}

	return &model.FactCheckMatch{
		Publisher:    publisher,
		Rating:       rating,
		ReviewURL:    review.URL,
		MatchedClaim: best.Text,
		Similarity:   bestSim,
		Score:        MapRatingScore(rating),
	}, nil
}

// search issues the registry request, consulting the cache first
func (c *Client) search(ctx context.Context, query string) ([]byte, error) {
	key := cache.Key("factcheck", query)
	if c.store != nil {
		if body, found := c.store.Get(key); found {
			return body, nil
		}
	}

	params := url.Values{}
	params.Set("key", c.cfg.APIKey)
	params.Set("query", query)
	params.Set("languageCode", c.cfg.Language)

	reqURL := c.cfg.BaseURL + "?" + params.Encode()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, c.cfg.BaseURL); err != nil {
			return nil, fmt.Errorf("factcheck: rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("factcheck: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("factcheck: request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("factcheck: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("factcheck: read response: %w", err)
	}

	if c.store != nil {
		_ = c.store.Set(key, body, 0)
	}

	return body, nil
}

// Rating vocabulary families, checked in order: an explicit debunk beats
// any other wording the publisher used alongside it.
var (
	falseRatings   = []string{"false", "fake", "incorrect", "pants on fire"}
	partialRatings = []string{"misleading", "missing context", "partly"}
	trueRatings    = []string{"true", "correct", "verified"}
)

// MapRatingScore maps a publisher's textual rating onto a 0-100
// fact-check score. Unknown vocabulary maps to the neutral 50.
func MapRatingScore(rating string) int {
	lower := strings.ToLower(rating)

	for _, bad := range falseRatings {
		if strings.Contains(lower, bad) {
			return 0
		}
	}
	for _, partial := range partialRatings {
		if strings.Contains(lower, partial) {
			return 40
		}
	}
	for _, good := range trueRatings {
		if strings.Contains(lower, good) {
			return 100
		}
	}
	return 50
}
