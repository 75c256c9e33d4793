package tools

import (
	"github.com/mark3labs/mcp-go/server"
)

// ServerName shows up in the MCP handshake and the health probe.
const ServerName = "mcp-abstract-api"

// NewServer assembles an MCP server with every Abstract API tool
// registered against the given client registry.
func NewServer(registry *Registry, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	h := NewHandlers(registry)

	s.AddTool(newValidateEmailTool(), h.handleValidateEmail)
	s.AddTool(newValidatePhoneTool(), h.handleValidatePhone)
	s.AddTool(newValidateVATTool(), h.handleValidateVAT)
	s.AddTool(newGeolocateIPTool(), h.handleGeolocateIP)
	s.AddTool(newGetIPInfoTool(), h.handleGetIPInfo)
	s.AddTool(newGeolocateIPSecurityTool(), h.handleGeolocateIPSecurity)
	s.AddTool(newGetTimezoneTool(), h.handleGetTimezone)
	s.AddTool(newConvertTimezoneTool(), h.handleConvertTimezone)
	s.AddTool(newGetHolidaysTool(), h.handleGetHolidays)
	s.AddTool(newGetExchangeRatesTool(), h.handleGetExchangeRates)
	s.AddTool(newConvertCurrencyTool(), h.handleConvertCurrency)
	s.AddTool(newGetCompanyInfoTool(), h.handleGetCompanyInfo)
	s.AddTool(newScrapeURLTool(), h.handleScrapeURL)
	s.AddTool(newGenerateScreenshotTool(), h.handleGenerateScreenshot)

	return s
}
