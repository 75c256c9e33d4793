package abstractapi

import (
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultTimeout bounds every request unless a capability widens it.
	DefaultTimeout = 30 * time.Second

	// ExtendedTimeout applies to scraping and screenshot requests which
	// render pages remotely and routinely take longer than the rest of
	// the products.
	ExtendedTimeout = 60 * time.Second

	defaultUserAgent = "mcp-server-abstract-api/1.0"

	apiKeyEnvVar = "ABSTRACT_API_KEY"
)

type Opts struct {
	// APIKey is sent as the api_key query parameter. If empty, the
	// ABSTRACT_API_KEY environment variable is used. An empty key is
	// allowed: the request goes out without one and the remote side
	// decides.
	APIKey string

	// Timeout for a single request. DefaultTimeout if zero.
	Timeout time.Duration

	UserAgent string
}

// Client talks to the Abstract API product endpoints. A zero-ish client
// is usable right away: the underlying connection pool is created
// lazily on first request and released by Close. It is safe for
// concurrent use.
type Client struct {
	apiKey    string
	userAgent string

	timeout int64

	mu      sync.Mutex
	session *http.Client
}

func NewClient(opts Opts) *Client {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnvVar)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := &Client{
		apiKey:    apiKey,
		userAgent: userAgent,
	}
	atomic.StoreInt64(&client.timeout, int64(timeout))

	return client
}

func (c *Client) ensureSession() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		c.session = &http.Client{}
	}

	return c.session
}

// Close releases the connection pool. It is safe to call more than
// once; the session is recreated lazily if the client is used again.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		c.session.CloseIdleConnections()
		c.session = nil
	}
}

// WithSession runs a function against the client and closes the
// session afterwards, on every exit path including panics.
func (c *Client) WithSession(fn func(*Client) error) error {
	defer c.Close()

	return fn(c)
}

func (c *Client) getTimeout() time.Duration {
	return time.Duration(atomic.LoadInt64(&c.timeout))
}

// widenTimeout switches the client to ExtendedTimeout and returns a
// function which restores the previous value. The widened timeout is
// shared state: a concurrent call on the same client may observe it
// while the slow call is in flight.
func (c *Client) widenTimeout() func() {
	previous := atomic.SwapInt64(&c.timeout, int64(ExtendedTimeout))

	return func() {
		atomic.StoreInt64(&c.timeout, previous)
	}
}
