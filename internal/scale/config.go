package scale

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is the public Scale API root.
const DefaultBaseURL = "https://api.scale.com/v1"

// DefaultTimeout bounds a single task submission end to end.
const DefaultTimeout = 30 * time.Second

// Config for the Scale client. The API key is never read from the
// environment here; resolving credentials is the caller's job.
type Config struct {
	APIKey  string        // basic-auth username; the password is always empty
	BaseURL string        // default https://api.scale.com/v1
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}
