package readably

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fernlight/readably/internal/charset"
	"github.com/fernlight/readably/internal/validation"
)

// Client is a thread-safe, reusable harness around the core Extract
// function: it fetches a URL (or accepts pre-fetched HTML), validates it
// against SSRF protections, sniffs and normalizes its character encoding,
// and hands UTF-8 bytes to Extract. Grounded on the teacher's Client
// (client.go), narrowed to wrap the single-threaded core of spec §5
// rather than the teacher's per-site custom extractor dispatch.
type Client struct {
	httpClient           *http.Client
	userAgent            string
	timeout              time.Duration
	allowPrivateNetworks bool
	features             map[string]int
}

// New creates a new Client with the provided options. The client is
// thread-safe and should be reused across requests.
//
// Example:
//
//	client := readably.New(
//	    readably.WithTimeout(30*time.Second),
//	    readably.WithUserAgent("MyApp/1.0"),
//	)
func New(opts ...Option) *Client {
	c := &Client{
		userAgent: "readably/1.0",
		timeout:   30 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: c.timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return c
}

// Parse fetches url and extracts its article content.
//
// Example:
//
//	product, err := client.Parse(context.Background(), "https://example.com/article")
func (c *Client) Parse(ctx context.Context, url string) (*Product, error) {
	if url == "" {
		return nil, &ExtractError{Code: ErrInvalidInput, URL: url, Op: "Parse", Err: fmt.Errorf("empty URL")}
	}

	if err := c.validate(ctx, url); err != nil {
		return nil, &ExtractError{Code: ErrInvalidInput, URL: url, Op: "Parse", Err: err}
	}

	body, contentType, err := c.fetch(ctx, url)
	if err != nil {
		return nil, classifyFetchError(err, url, "Parse")
	}

	utf8Body := charset.DecodeToUTF8(body, contentType)

	product, err := Extract(utf8Body, url, c.features)
	if err != nil {
		return nil, reattributeURL(err, url, "Parse")
	}
	return product, nil
}

// ParseHTML extracts content from pre-fetched HTML, skipping the network
// fetch. Useful when the caller already has the HTML and wants to avoid
// a duplicate request.
//
// Example:
//
//	product, err := client.ParseHTML(ctx, html, "https://example.com/article")
func (c *Client) ParseHTML(ctx context.Context, html, url string) (*Product, error) {
	if url == "" {
		return nil, &ExtractError{Code: ErrInvalidInput, URL: url, Op: "ParseHTML", Err: fmt.Errorf("empty URL")}
	}
	if html == "" {
		return nil, &ExtractError{Code: ErrInvalidInput, URL: url, Op: "ParseHTML", Err: fmt.Errorf("empty HTML content")}
	}

	if err := c.validate(ctx, url); err != nil {
		return nil, &ExtractError{Code: ErrInvalidInput, URL: url, Op: "ParseHTML", Err: err}
	}

	product, err := Extract([]byte(html), url, c.features)
	if err != nil {
		return nil, reattributeURL(err, url, "ParseHTML")
	}
	return product, nil
}

func (c *Client) validate(ctx context.Context, rawURL string) error {
	opts := validation.DefaultValidationOptions()
	opts.AllowPrivateNetworks = c.allowPrivateNetworks
	opts.AllowLocalhost = c.allowPrivateNetworks
	return validation.ValidateURL(ctx, rawURL, opts)
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func classifyFetchError(err error, url, op string) error {
	code := ErrIO
	if errors.Is(err, context.DeadlineExceeded) {
		code = ErrTimeout
	} else if errors.Is(err, context.Canceled) {
		code = ErrContext
	}
	return &ExtractError{Code: code, URL: url, Op: op, Err: err}
}

// reattributeURL rewraps an ExtractError surfaced by the core (which
// knows nothing of the outer URL/op naming) with this call's URL and Op.
func reattributeURL(err error, url, op string) error {
	if extractErr, ok := err.(*ExtractError); ok {
		return &ExtractError{Code: extractErr.Code, URL: url, Op: op, Err: extractErr.Err}
	}
	return &ExtractError{Code: ErrExtract, URL: url, Op: op, Err: err}
}
