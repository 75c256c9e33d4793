package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newGetExchangeRatesTool() mcp.Tool {
	return mcp.NewTool("get_exchange_rates",
		mcp.WithDescription("Get current currency exchange rates for a base currency. "+
			"If target is specified, returns only that rate; otherwise returns all "+
			"available rates."),
		mcp.WithString("base",
			mcp.DefaultString("USD"),
			mcp.Description("Base currency code (e.g., \"USD\")")),
		mcp.WithString("target",
			mcp.Description("Target currency code (optional, returns all if not specified)")),
	)
}

func (h *Handlers) handleGetExchangeRates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base := request.GetString("base", "USD")
	target := request.GetString("target", "")

	result, err := h.registry.Client(ServiceExchange).ExchangeRates(ctx, base, target)
	if err != nil {
		return nil, reportError("get_exchange_rates", err)
	}

	return resultJSON(result)
}

func newConvertCurrencyTool() mcp.Tool {
	return mcp.NewTool("convert_currency",
		mcp.WithDescription("Convert amount between currencies using live or historical "+
			"exchange rates. Includes the calculated converted amount."),
		mcp.WithString("base",
			mcp.Required(),
			mcp.Description("Base currency code (e.g., \"USD\")")),
		mcp.WithString("target",
			mcp.Required(),
			mcp.Description("Target currency code (e.g., \"EUR\")")),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Amount to convert")),
		mcp.WithString("date",
			mcp.Description("Historical date in YYYY-MM-DD format (optional)")),
	)
}

func (h *Handlers) handleConvertCurrency(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base, err := request.RequireString("base")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	target, err := request.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	amount, err := request.RequireFloat("amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	date := request.GetString("date", "")

	result, err := h.registry.Client(ServiceExchange).ConvertCurrency(ctx, base, target, amount, date)
	if err != nil {
		return nil, reportError("convert_currency", err)
	}

	return resultJSON(result)
}
