package abstractapi_test

import (
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"

	"github.com/NimbleBrainInc/mcp-abstract/abstractapi"
)

type ClientTestSuite struct {
	suite.Suite

	client *abstractapi.Client
}

func (suite *ClientTestSuite) SetupTest() {
	suite.client = abstractapi.NewClient(abstractapi.Opts{
		APIKey: "token",
	})
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.client.Close()
}

type MockedClientTestSuite struct {
	ClientTestSuite
}

func (suite *MockedClientTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedClientTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedClientTestSuite) TearDownTest() {
	suite.ClientTestSuite.TearDownTest()

	httpmock.Reset()
}
