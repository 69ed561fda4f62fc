package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

func testConfig(baseURL string) model.NewsConfig {
	cfg := model.DefaultConfig().News
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	return cfg
}

func articlesResponse(urls ...string) string {
	out := `{"status":"ok","articles":[`
	for i, u := range urls {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"source":{"name":"Source %d"},"title":"Title %d","url":"%s","publishedAt":"2025-08-30T10:00:00Z"}`, i, i, u)
	}
	return out + `]}`
}

func TestVerifyPresence_TrustedClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("language") != "en" {
			t.Errorf("expected language=en, got %q", q.Get("language"))
		}
		if q.Get("sortBy") != "relevancy" {
			t.Errorf("expected sortBy=relevancy, got %q", q.Get("sortBy"))
		}
		if q.Get("pageSize") != "10" {
			t.Errorf("expected pageSize=10, got %q", q.Get("pageSize"))
		}
		_, _ = w.Write([]byte(articlesResponse(
			"https://www.reuters.com/world/story-1",
			"https://apnews.com/article/story-2",
			"https://random-blog.example.com/post",
		)))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil, nil, nil)

	coverage, err := client.VerifyPresence(context.Background(), "major world event")
	if err != nil {
		t.Fatalf("VerifyPresence failed: %v", err)
	}

	if coverage.TotalArticles != 3 {
		t.Errorf("total = %d, want 3", coverage.TotalArticles)
	}
	if len(coverage.TrustedArticles) != 2 {
		t.Errorf("trusted = %d, want 2", len(coverage.TrustedArticles))
	}
	if !coverage.HasTrustedCoverage {
		t.Error("expected trusted coverage")
	}
	if coverage.Score != 70 {
		t.Errorf("score = %d, want 70 for 2 trusted articles", coverage.Score)
	}
}

func TestVerifyPresence_NoArticles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","articles":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil, nil, nil)

	coverage, err := client.VerifyPresence(context.Background(), "fabricated event nobody reported")
	if err != nil {
		t.Fatalf("VerifyPresence failed: %v", err)
	}

	if coverage == nil {
		t.Fatal("successful lookup with zero articles should not be nil")
	}
	if coverage.TotalArticles != 0 || coverage.Score != 0 {
		t.Errorf("expected zero coverage with score 0, got %+v", coverage)
	}
	if coverage.HasTrustedCoverage {
		t.Error("expected no trusted coverage")
	}
}

func TestVerifyPresence_MissingCredential(t *testing.T) {
	client := NewClient(model.DefaultConfig().News, nil, nil, nil)

	coverage, err := client.VerifyPresence(context.Background(), "anything")
	if err != ErrNoCredential {
		t.Errorf("expected ErrNoCredential, got %v", err)
	}
	if coverage != nil {
		t.Errorf("expected nil coverage, got %+v", coverage)
	}
}

func TestVerifyPresence_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil, nil, nil)

	if _, err := client.VerifyPresence(context.Background(), "anything"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestVerifyPresence_IndexErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","articles":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil, nil, nil)

	if _, err := client.VerifyPresence(context.Background(), "anything"); err == nil {
		t.Error("expected error for index error status")
	}
}

func TestPresenceScore(t *testing.T) {
	tests := []struct {
		total, trusted, want int
	}{
		{10, 5, 100},
		{10, 3, 100},
		{10, 2, 70},
		{10, 1, 70},
		{10, 0, 40},
		{1, 0, 40},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := PresenceScore(tt.total, tt.trusted); got != tt.want {
			t.Errorf("PresenceScore(%d, %d) = %d, want %d", tt.total, tt.trusted, got, tt.want)
		}
	}
}
