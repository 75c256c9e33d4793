package abstractapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"

	"github.com/NimbleBrainInc/mcp-abstract/abstractapi"
)

const emailEndpoint = "https://emailvalidation.abstractapi.com/v1/"

type MockedEmailTestSuite struct {
	MockedClientTestSuite
}

func (suite *MockedEmailTestSuite) TestValidateOK() {
	httpmock.RegisterResponder("GET", emailEndpoint,
		httpmock.NewStringResponder(http.StatusOK, `{
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
        }`))

	result, err := suite.client.ValidateEmail(context.Background(), "user@example.com")

	suite.NoError(err)
	suite.Equal("user@example.com", result.Email)
	suite.Equal("DELIVERABLE", result.Deliverability)
	suite.Equal(0.99, result.QualityScore)
	suite.True(result.IsValidFormat.Value)
	suite.Equal("TRUE", result.IsValidFormat.Text)
	suite.False(result.IsFreeEmail.Value)
	suite.True(result.IsMxFound.Value)
	suite.True(result.IsSmtpValid.Value)
}

func (suite *MockedEmailTestSuite) TestValidateMissingRequiredField() {
	httpmock.RegisterResponder("GET", emailEndpoint,
		httpmock.NewStringResponder(http.StatusOK, `{
  "email": "user@example.com",
  "quality_score": 0.99
        }`))

	_, err := suite.client.ValidateEmail(context.Background(), "user@example.com")

	var decodeErr *abstractapi.DecodeError

	suite.ErrorAs(err, &decodeErr)
	suite.NotEmpty(decodeErr.Field)
}

func (suite *MockedEmailTestSuite) TestValidateUnauthorized() {
	httpmock.RegisterResponder("GET", emailEndpoint,
		httpmock.NewStringResponder(http.StatusUnauthorized,
			`{"error": {"message": "Invalid API key"}}`))

	_, err := suite.client.ValidateEmail(context.Background(), "user@example.com")

	var apiErr *abstractapi.APIError

	suite.ErrorAs(err, &apiErr)
	suite.Equal(http.StatusUnauthorized, apiErr.StatusCode)
	suite.Equal("Invalid API key", apiErr.Message)
	suite.NotNil(apiErr.Details)
}

func (suite *MockedEmailTestSuite) TestValidateRateLimited() {
	httpmock.RegisterResponder("GET", emailEndpoint,
		httpmock.NewStringResponder(http.StatusTooManyRequests,
			`{"message": "Rate limited"}`))

	_, err := suite.client.ValidateEmail(context.Background(), "user@example.com")

	var apiErr *abstractapi.APIError

	suite.ErrorAs(err, &apiErr)
	suite.Equal(http.StatusTooManyRequests, apiErr.StatusCode)
	suite.Equal("Rate limited", apiErr.Message)
}

func (suite *MockedEmailTestSuite) TestValidateNetworkError() {
	httpmock.RegisterResponder("GET", emailEndpoint,
		httpmock.NewErrorResponder(context.DeadlineExceeded))

	_, err := suite.client.ValidateEmail(context.Background(), "user@example.com")

	var apiErr *abstractapi.APIError

	suite.ErrorAs(err, &apiErr)
	suite.Equal(http.StatusInternalServerError, apiErr.StatusCode)
	suite.Contains(apiErr.Message, "network error")
	suite.NotNil(apiErr.Unwrap())
}

func TestEmail(t *testing.T) {
	suite.Run(t, &MockedEmailTestSuite{})
}
