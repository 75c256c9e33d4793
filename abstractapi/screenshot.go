package abstractapi

import (
	"context"
	"encoding/hex"
	"net/url"
	"strconv"
)

const (
	screenshotEndpoint = "https://screenshot.abstractapi.com/v1/"

	// screenshotPreviewChars limits ImageData in a synthesized record;
	// the full image is never inlined into the response.
	screenshotPreviewChars = 100
)

var screenshotRequiredFields = []string{"success", "url", "image_data"}

type Screenshot struct {
	Success     bool   `json:"success"`
	URL         string `json:"url"`
	ImageData   string `json:"image_data"`
	ContentType string `json:"content_type,omitempty"`
	Note        string `json:"note,omitempty"`
}

// CaptureScreenshot renders a page remotely and captures it at the
// given viewport size, the whole page if fullPage is set. The call
// runs under ExtendedTimeout.
//
// The endpoint usually answers with raw PNG bytes; those are folded
// into a record carrying a truncated hex preview instead of the image
// itself.
func (c *Client) CaptureScreenshot(ctx context.Context, pageURL string, width, height int, fullPage bool) (*Screenshot, error) {
	restore := c.widenTimeout()
	defer restore()

	query := url.Values{}
	query.Set("url", pageURL)
	query.Set("width", strconv.Itoa(width))
	query.Set("height", strconv.Itoa(height))
	query.Set("full_page", strconv.FormatBool(fullPage))

	resp, err := c.request(ctx, screenshotEndpoint, query)
	if err != nil {
		return nil, err
	}

	if resp.binary != nil {
		preview := hex.EncodeToString(resp.binary)
		if len(preview) > screenshotPreviewChars {
			preview = preview[:screenshotPreviewChars]
		}

		return &Screenshot{
			Success:     true,
			URL:         pageURL,
			ImageData:   preview + "...",
			ContentType: "image/png",
			Note:        "Full image data available in response",
		}, nil
	}

	result := &Screenshot{}
	if err := decodeRecord(resp.doc, screenshotRequiredFields, result); err != nil {
		return nil, err
	}

	return result, nil
}
