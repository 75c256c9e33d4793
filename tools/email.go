package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newValidateEmailTool() mcp.Tool {
	return mcp.NewTool("validate_email",
		mcp.WithDescription("Validate email address and check deliverability. "+
			"Checks email format, domain validity, MX records, SMTP validation, "+
			"and detects disposable/role-based emails."),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address to validate")),
	)
}

func (h *Handlers) handleValidateEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := request.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.registry.Client(ServiceEmail).ValidateEmail(ctx, email)
	if err != nil {
		return nil, reportError("validate_email", err)
	}

	return resultJSON(result)
}
