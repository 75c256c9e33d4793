package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newGenerateScreenshotTool() mcp.Tool {
	return mcp.NewTool("generate_screenshot",
		mcp.WithDescription("Generate website screenshot at specified dimensions. "+
			"Can capture full page or viewport only."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL to screenshot")),
		mcp.WithNumber("width",
			mcp.DefaultNumber(1920),
			mcp.Description("Screenshot width in pixels (default: 1920)")),
		mcp.WithNumber("height",
			mcp.DefaultNumber(1080),
			mcp.Description("Screenshot height in pixels (default: 1080)")),
		mcp.WithBoolean("full_page",
			mcp.DefaultBool(false),
			mcp.Description("Capture full page (default: false)")),
	)
}

func (h *Handlers) handleGenerateScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageURL, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	width := request.GetInt("width", 1920)
	height := request.GetInt("height", 1080)
	fullPage := request.GetBool("full_page", false)

	result, err := h.registry.Client(ServiceScreenshot).CaptureScreenshot(ctx, pageURL, width, height, fullPage)
	if err != nil {
		return nil, reportError("generate_screenshot", err)
	}

	return resultJSON(result)
}
