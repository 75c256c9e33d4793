package abstractapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

const holidaysEndpoint = "https://holidays.abstractapi.com/v1/"

type MockedHolidaysTestSuite struct {
	MockedClientTestSuite
}

func (suite *MockedHolidaysTestSuite) TestRawListResponse() {
	httpmock.RegisterResponder("GET", holidaysEndpoint,
		func(req *http.Request) (*http.Response, error) {
			suite.Equal("US", req.URL.Query().Get("country"))
			suite.Equal("2025", req.URL.Query().Get("year"))
			suite.Equal("7", req.URL.Query().Get("month"))
			suite.Equal("4", req.URL.Query().Get("day"))

			return httpmock.NewStringResponse(http.StatusOK, `[
  {
    "name": "Independence Day",
    "name_local": "",
    "language": "",
    "description": "",
    "country": "US",
    "location": "United States",
    "type": "National",
    "date": "07/04/2025",
    "date_year": "2025",
    "date_month": "07",
    "date_day": "04",
    "week_day": "Friday"
  }
            ]`), nil
		})

	result, err := suite.client.Holidays(context.Background(), "US", 2025, 7, 4)

	suite.NoError(err)
	suite.Len(result.Holidays, 1)
	suite.Equal("Independence Day", result.Holidays[0].Name)
	suite.Equal("US", result.Holidays[0].Country)
	suite.Equal("National", result.Holidays[0].Type)
	suite.Equal("07/04/2025", result.Holidays[0].Date)
	suite.Equal("Friday", result.Holidays[0].WeekDay)
}

func (suite *MockedHolidaysTestSuite) TestObjectResponse() {
	httpmock.RegisterResponder("GET", holidaysEndpoint,
		httpmock.NewStringResponder(http.StatusOK, `{
  "holidays": [
    {
      "name": "New Year's Day",
      "country": "US",
      "type": "National",
      "date": "01/01/2025",
      "date_year": "2025",
      "date_month": "01",
      "date_day": "01",
      "week_day": "Wednesday"
    }
  ]
        }`))

	result, err := suite.client.Holidays(context.Background(), "US", 2025, 0, 0)

	suite.NoError(err)
	suite.Len(result.Holidays, 1)
	suite.Equal("New Year's Day", result.Holidays[0].Name)
}

func (suite *MockedHolidaysTestSuite) TestEmptyListResponse() {
	httpmock.RegisterResponder("GET", holidaysEndpoint,
		func(req *http.Request) (*http.Response, error) {
			suite.False(req.URL.Query().Has("month"))
			suite.False(req.URL.Query().Has("day"))

			return httpmock.NewStringResponse(http.StatusOK, `[]`), nil
		})

	result, err := suite.client.Holidays(context.Background(), "SE", 2025, 0, 0)

	suite.NoError(err)
	suite.Empty(result.Holidays)
}

func TestHolidays(t *testing.T) {
	suite.Run(t, &MockedHolidaysTestSuite{})
}
