package abstractapi

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
)

// normalized is an outcome of content-type driven response decoding:
// either raw bytes for binary payloads or a JSON document.
type normalized struct {
	binary []byte
	doc    []byte
}

func (c *Client) request(ctx context.Context, endpoint string, query url.Values) (*normalized, error) {
	if c.apiKey != "" {
		query.Set("api_key", c.apiKey)
	}

	requestURL := endpoint
	if encoded := query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	ctx, cancel := context.WithTimeout(ctx, c.getTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, newTransportError(err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.ensureSession().Do(req)
	if err != nil {
		return nil, newTransportError(err)
	}

	defer flushResponse(resp.Body)

	body, err := ioutil.ReadAll(bufio.NewReader(resp.Body))
	if err != nil {
		return nil, newTransportError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newStatusError(resp.StatusCode, decodeDetails(body))
	}

	return normalize(resp.Header.Get("Content-Type"), body)
}

// normalize converts a response body into either raw bytes or a JSON
// document, driven by the declared content type. Plain text and
// unrecognized non-JSON payloads are wrapped as {"result": text}.
func normalize(contentType string, body []byte) (*normalized, error) {
	switch {
	case strings.Contains(contentType, "image"),
		strings.Contains(contentType, "application/octet-stream"):
		return &normalized{binary: body}, nil

	case strings.Contains(contentType, "application/json"):
		if !json.Valid(body) {
			return nil, &DecodeError{err: errInvalidJSONBody}
		}

		return &normalized{doc: body}, nil

	case strings.Contains(contentType, "text/plain"):
		return &normalized{doc: wrapText(body)}, nil
	}

	if len(body) > 0 && (body[0] == '{' || body[0] == '[') && json.Valid(body) {
		return &normalized{doc: body}, nil
	}

	return &normalized{doc: wrapText(body)}, nil
}

var errInvalidJSONBody = jsonBodyError{}

type jsonBodyError struct{}

func (jsonBodyError) Error() string {
	return "declared json body is not a valid json"
}

func wrapText(body []byte) []byte {
	doc, _ := json.Marshal(map[string]string{"result": string(body)}) // nolint: errcheck

	return doc
}

// decodeDetails parses an error body for APIError details. A body
// which is not a JSON document at all yields nil details.
func decodeDetails(body []byte) interface{} {
	var details interface{}

	if err := json.Unmarshal(body, &details); err != nil {
		return nil
	}

	return details
}

// decodeRecord unmarshals a JSON document into a response record,
// failing if any of the required top-level fields is absent.
func decodeRecord(doc []byte, required []string, v interface{}) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(doc, &fields); err != nil {
		return &DecodeError{err: err}
	}

	for _, name := range required {
		if _, ok := fields[name]; !ok {
			return &DecodeError{Field: name}
		}
	}

	if err := json.Unmarshal(doc, v); err != nil {
		return &DecodeError{err: err}
	}

	return nil
}

func flushResponse(body io.ReadCloser) {
	io.Copy(ioutil.Discard, body) // nolint: errcheck
	body.Close()
}
