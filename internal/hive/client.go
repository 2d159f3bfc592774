package hive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher produces the current list of records from the remote page.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client downloads the new-posts page and extracts thread records from it.
type Client struct {
	sourceURL *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "hivewatch/0.1"
	requestTimeout   = 15 * time.Second
	maxBodyBytes     = 8 << 20
)

// Page selectors. A thread is a .titleText block whose link lives under
// .title .PreviewTooltip and whose forum lives under .secondRow .forumLink.
const (
	threadSelector = ".titleText"
	titleSelector  = ".title .PreviewTooltip"
	forumSelector  = ".secondRow .forumLink"
)

// NewClient builds a Client that fetches sourceURL. A URL without a scheme
// is treated as https.
func NewClient(sourceURL string) (*Client, error) {
	src, err := parseURL("source_url", sourceURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		sourceURL: src,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Fetch performs one GET of the source page and extracts every thread on it,
// in page order.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s returned status %d", c.sourceURL.Path, resp.StatusCode)
	}
	return Extract(io.LimitReader(resp.Body, maxBodyBytes))
}

// Extract parses an HTML document and returns its thread records in document
// order. A thread block missing its title link, href or forum is an error.
func Extract(r io.Reader) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var (
		records []Record
		extErr  error
	)
	doc.Find(threadSelector).EachWithBreak(func(i int, node *goquery.Selection) bool {
		title := node.Find(titleSelector).First()
		if title.Length() == 0 {
			extErr = fmt.Errorf("thread %d: missing title", i)
			return false
		}
		href, ok := title.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			extErr = fmt.Errorf("thread %d: title has no href", i)
			return false
		}
		forum := node.Find(forumSelector).First()
		if forum.Length() == 0 {
			extErr = fmt.Errorf("thread %d: missing forum", i)
			return false
		}
		records = append(records, Record{
			Title: strings.TrimSpace(title.Text()),
			Forum: strings.TrimSpace(forum.Text()),
			Href:  strings.TrimSpace(href),
		})
		return true
	})
	if extErr != nil {
		return nil, fmt.Errorf("extract threads: %w", extErr)
	}
	return records, nil
}

// JoinURL joins a base URL and a site-relative href with exactly one slash.
func JoinURL(base, href string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(href, "/")
}

func parseURL(name, raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%s is empty", name)
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", name, raw, err)
	}
	u.Fragment = ""
	return u, nil
}
