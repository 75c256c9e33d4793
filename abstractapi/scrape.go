package abstractapi

import (
	"context"
	"net/url"
	"strconv"
)

const scrapeEndpoint = "https://scrape.abstractapi.com/v1/"

var scrapeRequiredFields = []string{"url"}

type ScrapeResult struct {
	URL      string                 `json:"url"`
	Content  string                 `json:"content,omitempty"`
	HTML     string                 `json:"html,omitempty"`
	Links    []string               `json:"links,omitempty"`
	Images   []string               `json:"images,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Scrape extracts content, links, images and metadata from a web page.
// renderJS asks the remote side to execute JavaScript first. Remote
// rendering is slow, so the call runs under ExtendedTimeout.
func (c *Client) Scrape(ctx context.Context, pageURL string, renderJS bool) (*ScrapeResult, error) {
	restore := c.widenTimeout()
	defer restore()

	query := url.Values{}
	query.Set("url", pageURL)
	query.Set("render_js", strconv.FormatBool(renderJS))

	resp, err := c.request(ctx, scrapeEndpoint, query)
	if err != nil {
		return nil, err
	}

	result := &ScrapeResult{}
	if err := decodeRecord(resp.doc, scrapeRequiredFields, result); err != nil {
		return nil, err
	}

	return result, nil
}
