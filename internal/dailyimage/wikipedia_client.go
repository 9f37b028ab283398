package dailyimage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"gojournal/internal/config"
)

// FeaturedImage is the subset of the featured feed we keep.
type FeaturedImage struct {
	Title       string
	Description string
	ImageURL    string
	PageURL     string
}

type WikipediaClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

func NewWikipediaClient(cfg config.DailyImageConfig) *WikipediaClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WikipediaClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

// FetchFeatured reads the featured image for day. It returns nil when the
// feed has no image for that date.
func (c *WikipediaClient) FetchFeatured(ctx context.Context, day time.Time) (*FeaturedImage, error) {
	url := fmt.Sprintf("%s/feed/featured/%s", c.baseURL, day.UTC().Format("2006/01/02"))

	body, _, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read featured feed: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("featured feed returned invalid JSON")
	}

	image := gjson.GetBytes(data, "image")
	if !image.Exists() || !image.IsObject() {
		return nil, nil
	}

	featured := &FeaturedImage{
		Title:       image.Get("title").String(),
		Description: image.Get("description.text").String(),
		ImageURL:    image.Get("image.source").String(),
		PageURL:     image.Get("content_urls.desktop.page").String(),
	}
	if featured.ImageURL == "" {
		return nil, nil
	}
	if featured.Title == "" {
		featured.Title = "Unknown Image"
	}
	return featured, nil
}

// Download opens the image bytes. The caller closes the body.
func (c *WikipediaClient) Download(ctx context.Context, url string) (io.ReadCloser, string, error) {
	return c.get(ctx, url)
}

func (c *WikipediaClient) get(ctx context.Context, url string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("GET %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}
