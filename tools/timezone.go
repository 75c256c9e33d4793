package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newGetTimezoneTool() mcp.Tool {
	return mcp.NewTool("get_timezone",
		mcp.WithDescription("Get timezone from location or coordinates. Returns current "+
			"time and timezone information. Either location OR latitude/longitude must "+
			"be provided."),
		mcp.WithString("location",
			mcp.Description("Location name (e.g., \"New York\")")),
		mcp.WithNumber("latitude",
			mcp.Description("Latitude coordinate")),
		mcp.WithNumber("longitude",
			mcp.Description("Longitude coordinate")),
	)
}

func (h *Handlers) handleGetTimezone(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location := request.GetString("location", "")

	args := request.GetArguments()

	var latitude, longitude *float64

	if value, ok := args["latitude"].(float64); ok {
		latitude = &value
	}

	if value, ok := args["longitude"].(float64); ok {
		longitude = &value
	}

	result, err := h.registry.Client(ServiceTimezone).CurrentTimezone(ctx, location, latitude, longitude)
	if err != nil {
		return nil, reportError("get_timezone", err)
	}

	return resultJSON(result)
}

func newConvertTimezoneTool() mcp.Tool {
	return mcp.NewTool("convert_timezone",
		mcp.WithDescription("Convert time between timezones, handling daylight saving "+
			"time automatically."),
		mcp.WithString("base_location",
			mcp.Required(),
			mcp.Description("Source location/timezone")),
		mcp.WithString("base_datetime",
			mcp.Required(),
			mcp.Description("Datetime in ISO 8601 format")),
		mcp.WithString("target_location",
			mcp.Required(),
			mcp.Description("Target location/timezone")),
	)
}

func (h *Handlers) handleConvertTimezone(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	baseLocation, err := request.RequireString("base_location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	baseDatetime, err := request.RequireString("base_datetime")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	targetLocation, err := request.RequireString("target_location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.registry.Client(ServiceTimezone).ConvertTimezone(ctx, baseLocation, baseDatetime, targetLocation)
	if err != nil {
		return nil, reportError("convert_timezone", err)
	}

	return resultJSON(result)
}
