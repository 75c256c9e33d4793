package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newGetHolidaysTool() mcp.Tool {
	return mcp.NewTool("get_holidays",
		mcp.WithDescription("Get public holidays for a country and year. Returns a list "+
			"of holidays with names, dates, types, and descriptions. Can be filtered by "+
			"month and/or day."),
		mcp.WithString("country",
			mcp.Required(),
			mcp.Description("ISO 3166-1 alpha-2 country code (e.g., \"US\")")),
		mcp.WithNumber("year",
			mcp.Required(),
			mcp.Description("Year (e.g., 2025)")),
		mcp.WithNumber("month",
			mcp.Description("Month (1-12, optional)")),
		mcp.WithNumber("day",
			mcp.Description("Day (1-31, optional)")),
	)
}

func (h *Handlers) handleGetHolidays(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	country, err := request.RequireString("country")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	year, err := request.RequireInt("year")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	month := request.GetInt("month", 0)
	day := request.GetInt("day", 0)

	result, err := h.registry.Client(ServiceHolidays).Holidays(ctx, country, year, month, day)
	if err != nil {
		return nil, reportError("get_holidays", err)
	}

	return resultJSON(result)
}
