package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxBodySize limits the response body read by the static renderer.
// 5MB is sufficient for any HTML page while preventing memory exhaustion
// from unexpectedly large responses.
const maxBodySize = 5 * 1024 * 1024

// Static fetches pages over plain HTTP without executing scripts.
// It sees the server-rendered HTML only, which is enough for classic
// multi-page sites and test environments without Chrome. Client-rendered
// applications need the Browser renderer.
type Static struct {
	// client performs the HTTP requests.
	client *http.Client

	// userAgent is sent with every request.
	userAgent string
}

// StaticOption configures a Static renderer.
type StaticOption func(*Static)

// WithStaticClient sets a custom HTTP client.
// Tests use this to point at httptest servers.
func WithStaticClient(client *http.Client) StaticOption {
	return func(s *Static) {
		s.client = client
	}
}

// WithStaticUserAgent sets the User-Agent header.
func WithStaticUserAgent(ua string) StaticOption {
	return func(s *Static) {
		s.userAgent = ua
	}
}

// NewStatic creates a static HTTP renderer.
func NewStatic(opts ...StaticOption) *Static {
	s := &Static{
		client:    &http.Client{},
		userAgent: "PageLens/1.0",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch retrieves the page over HTTP and extracts its evidence.
func (s *Static) Fetch(ctx context.Context, pageURL string, timeout time.Duration) (*PageExtraction, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "html") && !strings.Contains(contentType, "xml") {
		return nil, fmt.Errorf("fetch %s: not an HTML page (%s)", pageURL, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", pageURL, err)
	}

	// The response URL reflects any redirects followed by the client.
	finalURL := pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return ExtractHTML(finalURL, string(body))
}

// Close releases the renderer session. The static renderer holds no
// session resources.
func (s *Static) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
