package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newScrapeURLTool() mcp.Tool {
	return mcp.NewTool("scrape_url",
		mcp.WithDescription("Extract structured data from web pages: content, links, "+
			"images, and metadata. Can optionally render JavaScript for dynamic sites."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL to scrape")),
		mcp.WithBoolean("render_js",
			mcp.DefaultBool(false),
			mcp.Description("Render JavaScript (default: false)")),
	)
}

func (h *Handlers) handleScrapeURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageURL, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	renderJS := request.GetBool("render_js", false)

	result, err := h.registry.Client(ServiceScrape).Scrape(ctx, pageURL, renderJS)
	if err != nil {
		return nil, reportError("scrape_url", err)
	}

	return resultJSON(result)
}
