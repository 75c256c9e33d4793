package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newValidateVATTool() mcp.Tool {
	return mcp.NewTool("validate_vat",
		mcp.WithDescription("Validate EU VAT numbers. Checks VAT number validity "+
			"and returns associated company information."),
		mcp.WithString("vat_number",
			mcp.Required(),
			mcp.Description("VAT number to validate (e.g., \"SE556656688001\")")),
	)
}

func (h *Handlers) handleValidateVAT(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vatNumber, err := request.RequireString("vat_number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.registry.Client(ServiceVAT).ValidateVAT(ctx, vatNumber)
	if err != nil {
		return nil, reportError("validate_vat", err)
	}

	return resultJSON(result)
}
