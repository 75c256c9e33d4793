package tools_test

import (
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"

	"github.com/NimbleBrainInc/mcp-abstract/abstractapi"
	"github.com/NimbleBrainInc/mcp-abstract/tools"
)

const emailEndpoint = "https://emailvalidation.abstractapi.com/v1/"

const emailResponseBody = `{
  "email": "user@example.com",
  "autocorrect": "",
  "deliverability": "DELIVERABLE",
  "quality_score": 0.99,
  "is_valid_format": {"value": true, "text": "TRUE"},
  "is_free_email": {"value": false, "text": "FALSE"},
  "is_disposable_email": {"value": false, "text": "FALSE"},
  "is_role_email": {"value": false, "text": "FALSE"},
  "is_catchall_email": {"value": false, "text": "FALSE"},
  "is_mx_found": {"value": true, "text": "TRUE"},
  "is_smtp_valid": {"value": true, "text": "TRUE"}
}`

type RegistryTestSuite struct {
	suite.Suite

	registry *tools.Registry
}

func (suite *RegistryTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *RegistryTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *RegistryTestSuite) SetupTest() {
	suite.T().Setenv("ABSTRACT_API_KEY", "")
	suite.T().Setenv("ABSTRACT_EMAIL_API_KEY", "")

	suite.registry = tools.NewRegistry(abstractapi.Opts{
		Timeout: time.Second,
	})
}

func (suite *RegistryTestSuite) TearDownTest() {
	suite.registry.Close()

	httpmock.Reset()
}
