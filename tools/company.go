package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newGetCompanyInfoTool() mcp.Tool {
	return mcp.NewTool("get_company_info",
		mcp.WithDescription("Get company data from domain name. Returns company "+
			"information including name, industry, employee count, founding year, "+
			"and social media profiles."),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Company domain (e.g., \"google.com\")")),
	)
}

func (h *Handlers) handleGetCompanyInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domain, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.registry.Client(ServiceCompany).CompanyInfo(ctx, domain)
	if err != nil {
		return nil, reportError("get_company_info", err)
	}

	return resultJSON(result)
}
