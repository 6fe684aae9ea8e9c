package crawler

import (
	"context"
	"net/http"

	"github.com/temoto/robotstxt"
)

// robotsFilter answers path-level allow/deny questions from a site's
// robots.txt. A nil filter allows everything.
type robotsFilter struct {
	group *robotstxt.Group
}

// allowed reports whether the path may be fetched.
func (r *robotsFilter) allowed(path string) bool {
	if r == nil || r.group == nil {
		return true
	}
	if path == "" {
		path = "/"
	}
	return r.group.Test(path)
}

// fetchRobots retrieves and parses origin/robots.txt.
// Any failure (network, parse, non-200) yields a nil filter: robots
// politeness is best-effort and must never block the crawl itself.
func (s *Spider) fetchRobots(ctx context.Context, origin string) *robotsFilter {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.robotsClient.Do(req)
	if err != nil {
		s.logger.Debug("robots.txt fetch failed", "origin", origin, "error", err)
		return nil
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		s.logger.Debug("robots.txt parse failed", "origin", origin, "error", err)
		return nil
	}
	return &robotsFilter{group: data.FindGroup(s.userAgent)}
}
