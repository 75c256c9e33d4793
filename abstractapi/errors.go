package abstractapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTimezoneArguments is returned by CurrentTimezone if neither a
	// location name nor a latitude/longitude pair was given. This is a
	// local validation failure, no request is made.
	ErrTimezoneArguments = errors.New("either location or latitude/longitude must be provided")
)

const unknownErrorMessage = "Unknown error"

type jsonAPIError struct {
	Error struct {
		Message string `json:"message"`
		Context string `json:"context"`
	} `json:"error"`
}

// APIError is the single error shape for every remote failure. Non-2xx
// responses carry the original status code and the decoded body;
// network-level failures carry status 500 and wrap the transport error.
type APIError struct {
	StatusCode int
	Message    string
	Details    interface{}
	err        error
}

func (a *APIError) Error() string {
	if a == nil {
		return ""
	}

	return fmt.Sprintf("abstract api error %d: %s", a.StatusCode, a.Message)
}

func (a *APIError) Unwrap() error {
	if a == nil {
		return nil
	}

	return a.err
}

func (a *APIError) MarshalJSON() ([]byte, error) {
	value := jsonAPIError{}
	value.Error.Message = a.Message

	if err := a.Unwrap(); err != nil {
		value.Error.Context = err.Error()
	}

	return json.Marshal(&value)
}

func newStatusError(statusCode int, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    extractErrorMessage(details),
		Details:    details,
	}
}

func newTransportError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "network error: " + err.Error(),
		err:        err,
	}
}

// extractErrorMessage digs a human readable message out of an error
// body. Abstract API products disagree on the shape, hence the
// precedence chain: error.message, message, title, stringified error.
func extractErrorMessage(details interface{}) string {
	body, ok := details.(map[string]interface{})
	if !ok {
		return unknownErrorMessage
	}

	if errObj, ok := body["error"].(map[string]interface{}); ok {
		if message, ok := errObj["message"].(string); ok && message != "" {
			return message
		}
	}

	if message, ok := body["message"].(string); ok && message != "" {
		return message
	}

	if title, ok := body["title"].(string); ok && title != "" {
		return title
	}

	if errValue, ok := body["error"]; ok {
		return fmt.Sprintf("%v", errValue)
	}

	return unknownErrorMessage
}

// DecodeError is returned if a 2xx response body cannot be interpreted
// as the record a capability expects.
type DecodeError struct {
	// Field is set if a required field was absent from the body.
	Field string

	err error
}

func (d *DecodeError) Error() string {
	switch {
	case d == nil:
		return ""
	case d.Field != "":
		return fmt.Sprintf("required field %q is missing from the response", d.Field)
	case d.err != nil:
		return "cannot decode a response: " + d.err.Error()
	}

	return "cannot decode a response"
}

func (d *DecodeError) Unwrap() error {
	if d == nil {
		return nil
	}

	return d.err
}
