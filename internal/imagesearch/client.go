package imagesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ErrNoResults is returned when the search page yields no usable image.
var ErrNoResults = errors.New("no image results found")

// Client finds candidate image URLs through a public image search page.
// Sourcing is best effort: callers treat any error as "no image".
type Client struct {
	httpClient *http.Client
	searchURL  string
	logger     *zap.Logger
}

// Config holds the image search settings.
type Config struct {
	SearchURL string
	Timeout   time.Duration
}

// New creates a new image search client.
func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.SearchURL == "" {
		cfg.SearchURL = "https://www.bing.com/images/search"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		searchURL:  cfg.SearchURL,
		logger:     logger.Named("ImageSearch"),
	}
}

// FindImageURL returns the first image URL the search page offers for the query.
func (c *Client) FindImageURL(ctx context.Context, query string) (string, error) {
	reqURL := fmt.Sprintf("%s?q=%s&form=HDRSC2", c.searchURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build image search request: %w", err)
	}
	// The search page serves a script-only shell to unknown agents.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image search returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse image search page: %w", err)
	}

	// Result anchors carry a JSON metadata blob with the full-size URL.
	var found string
	doc.Find("a.iusc").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		meta, ok := sel.Attr("m")
		if !ok {
			return true
		}
		var payload struct {
			MediaURL string `json:"murl"`
		}
		if err := json.Unmarshal([]byte(meta), &payload); err != nil {
			return true
		}
		if strings.HasPrefix(payload.MediaURL, "http") {
			found = payload.MediaURL
			return false
		}
		return true
	})

	if found == "" {
		c.logger.Debug("No image results", zap.String("query", query))
		return "", ErrNoResults
	}
	c.logger.Debug("Image found", zap.String("query", query), zap.String("url", found))
	return found, nil
}
