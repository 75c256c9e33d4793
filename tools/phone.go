package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newValidatePhoneTool() mcp.Tool {
	return mcp.NewTool("validate_phone",
		mcp.WithDescription("Validate phone number and get carrier info. "+
			"Validates phone format, identifies carrier, determines phone type "+
			"(mobile/landline), and provides location information."),
		mcp.WithString("phone",
			mcp.Required(),
			mcp.Description("Phone number to validate")),
		mcp.WithString("country_code",
			mcp.Description("ISO 3166-1 alpha-2 country code (optional)")),
	)
}

func (h *Handlers) handleValidatePhone(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	phone, err := request.RequireString("phone")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	countryCode := request.GetString("country_code", "")

	result, err := h.registry.Client(ServicePhone).ValidatePhone(ctx, phone, countryCode)
	if err != nil {
		return nil, reportError("validate_phone", err)
	}

	return resultJSON(result)
}
