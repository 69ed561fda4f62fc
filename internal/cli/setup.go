package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/cache"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/engine"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/factcheck"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/llm"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/news"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/util"
	"github.com/vivekminipuri/AI-fake-news-detector/internal/worker"
)

// loadConfig builds the effective configuration: defaults, then the
// config file, then environment variables for credentials.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Credentials come from the environment unless the file set them
	if cfg.FactCheck.APIKey == "" {
		cfg.FactCheck.APIKey = os.Getenv("GOOGLE_FACT_CHECK_KEY")
	}
	if cfg.News.APIKey == "" {
		cfg.News.APIKey = os.Getenv("NEWS_API_KEY")
	}

	return cfg, nil
}

// resolveOracleKey fills the LLM API key from the conventional env var
// for the configured provider.
func resolveOracleKey(cfg *model.Config) error {
	if cfg.LLM.Provider == "" || cfg.LLM.APIKey != "" {
		return nil
	}

	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "groq":
		cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return nil
}

// buildEngine wires the evidence clients, shared cache and rate limiter,
// and the optional adjudicator into a ready engine.
func buildEngine(cfg *model.Config) (*engine.Engine, error) {
	store := cache.New(cfg.Cache)
	limiter := worker.NewLimiter(cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst)

	factCheckClient := factcheck.NewClient(cfg.FactCheck,
		util.NewHTTPClient(cfg.HTTP, cfg.FactCheck.Timeout), store, limiter)
	newsClient := news.NewClient(cfg.News,
		util.NewHTTPClient(cfg.HTTP, cfg.News.Timeout), store, limiter)

	e := engine.New(cfg, factCheckClient, newsClient, nil)

	if cfg.LLM.Provider != "" {
		if err := resolveOracleKey(cfg); err != nil {
			return nil, err
		}
		adjudicator, err := llm.NewAdjudicator(cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("configure adjudicator: %w", err)
		}
		e.SetAdjudicator(adjudicator)
	}

	return e, nil
}
