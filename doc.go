// Package readably extracts the readable article content and metadata
// from an HTML document.
//
// Given a page's HTML and its URL, readably identifies the article
// subtree, extracts its title, author, description and publication date
// (including JSON-LD structured data), strips boilerplate, and returns a
// clean HTML fragment alongside the extracted metadata.
//
// # Basic Usage
//
// Create a client and parse a URL:
//
//	client := readably.New()
//	product, err := client.Parse(context.Background(), "https://example.com/article")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(product.Meta.Title)
//	fmt.Println(product.Content)
//
// # Configuration
//
// The client can be configured with various options:
//
//	client := readably.New(
//	    readably.WithTimeout(30 * time.Second),
//	    readably.WithUserAgent("MyApp/1.0"),
//	    readably.WithAllowPrivateNetworks(false),
//	)
//
// # Custom HTTP Client
//
// You can provide your own HTTP client for custom transport settings:
//
//	httpClient := &http.Client{
//	    Transport: &http.Transport{
//	        Proxy: http.ProxyFromEnvironment,
//	        MaxIdleConns: 100,
//	    },
//	}
//	client := readably.New(readably.WithHTTPClient(httpClient))
//
// # Parsing Pre-fetched HTML
//
// If you already have the HTML content, you can parse it directly,
// skipping the network fetch:
//
//	html := "<html>...</html>"
//	product, err := client.ParseHTML(context.Background(), html, "https://example.com")
//
// # Extracting Without a Client
//
// The core Extract function has no network dependency at all — it takes
// raw bytes and an optional URL (used only for resolving relative links
// and as a default-base fallback):
//
//	product, err := readably.Extract(htmlBytes, "https://example.com/article", nil)
//
// # Error Handling
//
// Errors are typed for programmatic handling:
//
//	product, err := client.Parse(ctx, url)
//	if err != nil {
//	    var extractErr *readably.ExtractError
//	    if errors.As(err, &extractErr) {
//	        switch extractErr.Code {
//	        case readably.ErrIO:
//	            // Handle fetch error
//	        case readably.ErrTimeout:
//	            // Handle timeout
//	        case readably.ErrSSRF:
//	            // Handle SSRF protection
//	        case readably.ErrNoCandidates:
//	            // No article subtree could be identified
//	        }
//	    }
//	}
//
// # Thread Safety
//
// The Client is thread-safe and should be reused across goroutines.
// Create one client and share it throughout your application.
//
// # Concurrency
//
// Extraction runs synchronously, one document at a time per call; there
// is no internal worker pool, and timeouts/cancellation beyond a single
// call are the caller's responsibility (see context.Context on Parse and
// ParseHTML). For concurrent parsing, implement your own worker pool:
//
//	var wg sync.WaitGroup
//	sem := make(chan struct{}, 10) // Limit concurrency
//
//	for _, url := range urls {
//	    wg.Add(1)
//	    sem <- struct{}{}
//
//	    go func(u string) {
//	        defer wg.Done()
//	        defer func() { <-sem }()
//
//	        product, err := client.Parse(ctx, u)
//	        // Handle product
//	    }(url)
//	}
//	wg.Wait()
package readably
