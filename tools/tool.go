package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	log "github.com/sirupsen/logrus"
)

// Handlers binds tool implementations to the client registry.
type Handlers struct {
	registry *Registry
}

func NewHandlers(registry *Registry) *Handlers {
	return &Handlers{
		registry: registry,
	}
}

// resultJSON renders a response record as a JSON tool result.
func resultJSON(record interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(string(data)), nil
}

// reportError logs a failure at the tool boundary and hands it to the
// caller unchanged.
func reportError(tool string, err error) error {
	log.WithFields(log.Fields{
		"tool": tool,
	}).Error(err)

	return err
}
