package model

import "time"

// Config is the full engine configuration. All tables are fixed per
// deployment and read-only once the engine is constructed, so a single
// Config is safe to share across concurrent analyses.
type Config struct {
	FactCheck   FactCheckConfig   `yaml:"factcheck"`
	News        NewsConfig        `yaml:"news"`
	LLM         LLMConfig         `yaml:"llm"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Heuristics  HeuristicsConfig  `yaml:"heuristics"`
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// FactCheckConfig configures the claim-review registry lookup
type FactCheckConfig struct {
	APIKey              string        `yaml:"api_key"`
	BaseURL             string        `yaml:"base_url"`
	Language            string        `yaml:"language"`
	QueryLimit          int           `yaml:"query_limit"`          // Max characters of claim text sent as query
	SimilarityThreshold float64       `yaml:"similarity_threshold"` // Minimum Jaccard similarity to accept a match
	Timeout             time.Duration `yaml:"timeout"`
}

// NewsConfig configures the news-search corroboration lookup
type NewsConfig struct {
	APIKey         string        `yaml:"api_key"`
	BaseURL        string        `yaml:"base_url"`
	Language       string        `yaml:"language"`
	QueryLimit     int           `yaml:"query_limit"`
	PageSize       int           `yaml:"page_size"`
	Timeout        time.Duration `yaml:"timeout"`
	TrustedDomains []string      `yaml:"trusted_domains"` // Mainstream allowlist for corroboration
}

// LLMConfig configures the generative adjudication oracle
type LLMConfig struct {
	Provider  string        `yaml:"provider"` // "openai", "groq", "ollama", "" (disabled)
	Model     string        `yaml:"model"`
	APIKey    string        `yaml:"api_key"`
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`
}

// ScoringConfig holds the fusion weights and verdict thresholds
type ScoringConfig struct {
	FactCheckWeight    float64 `yaml:"fact_check_weight"`
	NewsWeight         float64 `yaml:"news_weight"`
	ConsistencyWeight  float64 `yaml:"consistency_weight"`
	ReliableThreshold  int     `yaml:"reliable_threshold"`  // >= this is Reliable
	MixedThreshold     int     `yaml:"mixed_threshold"`     // >= this is Reliable-family
	SuspiciousFloor    int     `yaml:"suspicious_floor"`    // Below this is Likely Fake
	BreakingNewsMarker []string `yaml:"breaking_news_markers"` // Markers for suspicious-silence detection
}

// HeuristicsConfig holds the fixed keyword and domain tables
type HeuristicsConfig struct {
	ClickbaitKeywords []string `yaml:"clickbait_keywords"`
	TriggerPhrases    []string `yaml:"trigger_phrases"`
	HedgePhrases      []string `yaml:"hedge_phrases"`
	SuspiciousDomains []string `yaml:"suspicious_domains"`
	ReliableDomains   []string `yaml:"reliable_domains"`
}

// HTTPConfig configures outbound HTTP behaviour shared by all clients
type HTTPConfig struct {
	UserAgent         string  `yaml:"user_agent"`
	HTTPProxy         string  `yaml:"http_proxy"`
	HTTPSProxy        string  `yaml:"https_proxy"`
	RequestsPerSecond float64 `yaml:"requests_per_second"` // Per-host outbound rate limit
	Burst             int     `yaml:"burst"`
}

// CacheConfig configures caching of external lookup responses
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"` // Disk layer location; empty = memory only
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig bounds concurrent work
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers"` // Worker pool size for batch analysis
}

// DefaultConfig returns the fixed deployment defaults, including the
// keyword and domain tables the heuristics depend on.
func DefaultConfig() *Config {
	return &Config{
		FactCheck: FactCheckConfig{
			BaseURL:             "https://factchecktools.googleapis.com/v1alpha1/claims:search",
			Language:            "en",
			QueryLimit:          500,
			SimilarityThreshold: 0.2,
			Timeout:             8 * time.Second,
		},
		News: NewsConfig{
			BaseURL:    "https://newsapi.org/v2/everything",
			Language:   "en",
			QueryLimit: 100,
			PageSize:   10,
			Timeout:    8 * time.Second,
			TrustedDomains: []string{
				"bbc.co.uk", "cnn.com", "reuters.com", "apnews.com",
				"nytimes.com", "washingtonpost.com", "theguardian.com",
				"bloomberg.com", "ndtv.com", "indiatoday.in", "thehindu.com",
				"timesofindia.indiatimes.com", "indianexpress.com",
			},
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled unless configured
			Timeout:   10 * time.Second,
			MaxTokens: 500,
		},
		Scoring: ScoringConfig{
			FactCheckWeight:   0.45,
			NewsWeight:        0.35,
			ConsistencyWeight: 0.20,
			ReliableThreshold: 80,
			MixedThreshold:    65,
			SuspiciousFloor:   30,
			BreakingNewsMarker: []string{
				"breaking", "sworn in", "announced", "sources say",
			},
		},
		Heuristics: HeuristicsConfig{
			ClickbaitKeywords: []string{
				"shocking", "you won't believe", "mind blowing", "miracle",
				"secret", "exposed", "banned", "can't miss",
			},
			TriggerPhrases: []string{
				"you won't believe", "this is why",
			},
			HedgePhrases: []string{
				"unverified sources", "according to rumors", "sources claim",
				"allegedly", "it is believed", "experts claim",
				"critics have questioned", "social media platforms were flooded",
				"no official press release", "mainstream media is silent",
				"what they don't want you to know", "viral message",
				"forwarded many times",
			},
			SuspiciousDomains: []string{
				"fake-news.com", "shady-site.net", "conspiracy-theories.org",
				"real-raw-news.com", "infowars.com", "beforeitsnews.com",
			},
			ReliableDomains: []string{
				"bbc.com", "cnn.com", "reuters.com", "apnews.com",
				"npr.org", "pbs.org", "nytimes.com", "nasa.gov",
			},
		},
		HTTP: HTTPConfig{
			UserAgent:         "newsdetect/0.1 (+https://github.com/vivekminipuri/AI-fake-news-detector)",
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
	}
}
