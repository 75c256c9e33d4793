package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newGeolocateIPTool() mcp.Tool {
	return mcp.NewTool("geolocate_ip",
		mcp.WithDescription("Get location data from IP address. Returns comprehensive "+
			"geolocation data including city, region, country, coordinates, timezone, "+
			"currency, and ISP information."),
		mcp.WithString("ip_address",
			mcp.Required(),
			mcp.Description("IP address to geolocate")),
		mcp.WithString("fields",
			mcp.Description("Comma-separated fields to return (e.g., \"city,country,timezone\")")),
	)
}

func (h *Handlers) handleGeolocateIP(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ipAddress, err := request.RequireString("ip_address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fields := request.GetString("fields", "")

	result, err := h.registry.Client(ServiceIP).GeolocateIP(ctx, ipAddress, fields)
	if err != nil {
		return nil, reportError("geolocate_ip", err)
	}

	return resultJSON(result)
}

func newGetIPInfoTool() mcp.Tool {
	return mcp.NewTool("get_ip_info",
		mcp.WithDescription("Get detailed IP information (ISP, ASN, connection details). "+
			"Provides complete IP information including ISP, autonomous system number, "+
			"connection type, and network details."),
		mcp.WithString("ip_address",
			mcp.Required(),
			mcp.Description("IP address to query")),
	)
}

func (h *Handlers) handleGetIPInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ipAddress, err := request.RequireString("ip_address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.registry.Client(ServiceIP).IPInfo(ctx, ipAddress)
	if err != nil {
		return nil, reportError("get_ip_info", err)
	}

	return resultJSON(result)
}

func newGeolocateIPSecurityTool() mcp.Tool {
	return mcp.NewTool("geolocate_ip_security",
		mcp.WithDescription("Get IP geolocation with security/threat analysis. "+
			"Analyzes IP address to determine if it's from a VPN, proxy server, "+
			"tor exit node, or datacenter."),
		mcp.WithString("ip_address",
			mcp.Required(),
			mcp.Description("IP address to analyze")),
	)
}

func (h *Handlers) handleGeolocateIPSecurity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ipAddress, err := request.RequireString("ip_address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.registry.Client(ServiceIP).GeolocateIPSecurity(ctx, ipAddress)
	if err != nil {
		return nil, reportError("geolocate_ip_security", err)
	}

	return resultJSON(result)
}
