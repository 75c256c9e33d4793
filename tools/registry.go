package tools

import (
	"os"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/NimbleBrainInc/mcp-abstract/abstractapi"
)

const (
	// Service names used to scope API keys and cached clients.
	ServiceEmail      = "email"
	ServicePhone      = "phone"
	ServiceVAT        = "vat"
	ServiceIP         = "ip"
	ServiceTimezone   = "timezone"
	ServiceHolidays   = "holidays"
	ServiceExchange   = "exchange"
	ServiceCompany    = "company"
	ServiceScrape     = "scrape"
	ServiceScreenshot = "screenshot"
)

// Registry keeps one abstractapi client per logical service name,
// constructed lazily on first use and reused until Close.
type Registry struct {
	opts abstractapi.Opts

	mu      sync.Mutex
	clients map[string]*abstractapi.Client
}

// NewRegistry prepares an empty registry. opts carries the shared
// timeout and user agent; the APIKey field is ignored because keys are
// resolved per service.
func NewRegistry(opts abstractapi.Opts) *Registry {
	return &Registry{
		opts:    opts,
		clients: map[string]*abstractapi.Client{},
	}
}

func apiKeyForService(service string) string {
	return os.Getenv("ABSTRACT_" + strings.ToUpper(service) + "_API_KEY")
}

// Client returns the cached client of a service, constructing it on
// first use. A missing service key is not fatal: the client falls back
// to the generic ABSTRACT_API_KEY and the remote side rejects the call
// if that is not enough either.
func (r *Registry) Client(service string) *abstractapi.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[service]; ok {
		return client
	}

	opts := r.opts
	opts.APIKey = apiKeyForService(service)

	if opts.APIKey == "" {
		log.Warnf(
			"No API key configured for %s service. Set ABSTRACT_%s_API_KEY or ABSTRACT_API_KEY in your .env file",
			service,
			strings.ToUpper(service))
	}

	client := abstractapi.NewClient(opts)
	r.clients[service] = client

	return client
}

// Close releases the connection pool of every cached client and clears
// the cache.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, client := range r.clients {
		client.Close()
	}

	r.clients = map[string]*abstractapi.Client{}
}
