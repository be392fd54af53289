package openai

import (
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ClientConfig holds connection settings for the Requesty.ai gateway.
type ClientConfig struct {
	APIKey   string
	BaseURL  string
	SiteURL  string
	SiteName string
	Timeout  time.Duration
}

// headerTransport adds the attribution headers Requesty expects on every
// request.
type headerTransport struct {
	base     http.RoundTripper
	siteURL  string
	siteName string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", t.siteURL)
	req.Header.Set("X-Title", t.siteName)
	return t.base.RoundTrip(req)
}

func newClient(cfg ClientConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &headerTransport{
			base:     http.DefaultTransport,
			siteURL:  cfg.SiteURL,
			siteName: cfg.SiteName,
		},
	}
	return openai.NewClientWithConfig(clientConfig)
}
