package abstractapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

const (
	scrapeEndpoint     = "https://scrape.abstractapi.com/v1/"
	screenshotEndpoint = "https://screenshot.abstractapi.com/v1/"
)

type MockedScrapeTestSuite struct {
	MockedClientTestSuite
}

func (suite *MockedScrapeTestSuite) TestScrapeOK() {
	httpmock.RegisterResponder("GET", scrapeEndpoint,
		func(req *http.Request) (*http.Response, error) {
			suite.Equal("https://example.com", req.URL.Query().Get("url"))
			suite.Equal("true", req.URL.Query().Get("render_js"))

			return httpmock.NewStringResponse(http.StatusOK, `{
  "url": "https://example.com",
  "content": "Example Domain",
  "html": "<html><body>Example Domain</body></html>",
  "links": ["https://www.iana.org/domains/example"],
  "metadata": {"title": "Example Domain"}
            }`), nil
		})

	result, err := suite.client.Scrape(context.Background(), "https://example.com", true)

	suite.NoError(err)
	suite.Equal("https://example.com", result.URL)
	suite.Equal("Example Domain", result.Content)
	suite.Len(result.Links, 1)
	suite.Equal("Example Domain", result.Metadata["title"])
}

func TestScrape(t *testing.T) {
	suite.Run(t, &MockedScrapeTestSuite{})
}

type MockedScreenshotTestSuite struct {
	MockedClientTestSuite
}

func (suite *MockedScreenshotTestSuite) TestBinaryResponseIsSynthesized() {
	image := make([]byte, 256)
	for i := range image {
		image[i] = byte(i)
	}

	httpmock.RegisterResponder("GET", screenshotEndpoint,
		func(req *http.Request) (*http.Response, error) {
			suite.Equal("1920", req.URL.Query().Get("width"))
			suite.Equal("1080", req.URL.Query().Get("height"))
			suite.Equal("false", req.URL.Query().Get("full_page"))

			resp := httpmock.NewBytesResponse(http.StatusOK, image)
			resp.Header.Set("Content-Type", "image/png")

			return resp, nil
		})

	result, err := suite.client.CaptureScreenshot(context.Background(),
		"https://example.com", 1920, 1080, false)

	suite.NoError(err)
	suite.True(result.Success)
	suite.Equal("https://example.com", result.URL)
	suite.Equal("image/png", result.ContentType)
	suite.Len(result.ImageData, 103)
	suite.Equal("...", result.ImageData[100:])
	suite.Equal("000102030405", result.ImageData[:12])
}

func (suite *MockedScreenshotTestSuite) TestJSONResponse() {
	httpmock.RegisterResponder("GET", screenshotEndpoint,
		httpmock.NewStringResponder(http.StatusOK, `{
  "success": true,
  "url": "https://example.com",
  "image_data": "iVBORw0KGgo="
        }`))

	result, err := suite.client.CaptureScreenshot(context.Background(),
		"https://example.com", 1280, 720, true)

	suite.NoError(err)
	suite.True(result.Success)
	suite.Equal("iVBORw0KGgo=", result.ImageData)
}

func TestScreenshot(t *testing.T) {
	suite.Run(t, &MockedScreenshotTestSuite{})
}
