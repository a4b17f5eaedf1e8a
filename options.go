package readably

import (
	"net/http"
	"time"
)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client for the parser.
// This allows you to configure connection pooling, timeouts, proxies, etc.
//
// Example:
//
//	httpClient := &http.Client{
//	    Timeout: 60 * time.Second,
//	    Transport: &http.Transport{
//	        MaxIdleConns: 200,
//	    },
//	}
//	client := readably.New(readably.WithHTTPClient(httpClient))
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTransport sets a custom HTTP transport for the parser.
// This is useful for configuring proxies, TLS settings, connection pooling, etc.
// Options apply in order: a later WithHTTPClient replaces the client along
// with this transport, while a WithTransport given after WithHTTPClient sets
// the Transport of that supplied client.
//
// Example:
//
//	transport := &http.Transport{
//	    Proxy: http.ProxyFromEnvironment,
//	    MaxIdleConns: 100,
//	    IdleConnTimeout: 90 * time.Second,
//	}
//	client := readably.New(readably.WithTransport(transport))
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Transport = transport
	}
}

// WithTimeout sets the timeout for HTTP requests.
// This timeout applies to the entire request, including connection time,
// redirects, and reading the response body.
//
// Example:
//
//	client := readably.New(readably.WithTimeout(30 * time.Second))
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header for HTTP requests.
// This is useful for identifying your application to web servers.
//
// Example:
//
//	client := readably.New(readably.WithUserAgent("MyApp/1.0"))
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAllowPrivateNetworks allows or disallows parsing of private network URLs.
// By default, private networks are blocked for security (SSRF protection).
// Set to true only in trusted environments where you need to parse internal URLs.
//
// Private networks include:
//   - 10.0.0.0/8
//   - 172.16.0.0/12
//   - 192.168.0.0/16
//   - 127.0.0.0/8 (localhost)
//   - ::1 (IPv6 localhost)
//   - fc00::/7 (IPv6 private)
//
// Example:
//
//	// For internal tools that need to parse intranet content
//	client := readably.New(readably.WithAllowPrivateNetworks(true))
func WithAllowPrivateNetworks(allow bool) Option {
	return func(c *Client) {
		c.allowPrivateNetworks = allow
	}
}

// WithFeatures sets the C9 cleaning feature toggles passed through to
// Extract on every Parse/ParseHTML call. A value of 0 disables the named
// rule, non-zero enables it; unknown keys are ignored. Recognized keys are
// "enable-form-cleanup", "enable-iframe-cleanup", "enable-heading-cleanup",
// "enable-table-cleanup", "enable-list-cleanup", "enable-keep-class" and
// "allow-iframe:<host>".
//
// Example:
//
//	client := readably.New(readably.WithFeatures(map[string]int{
//	    "enable-form-cleanup": 0,
//	}))
func WithFeatures(features map[string]int) Option {
	return func(c *Client) {
		c.features = features
	}
}
