package abstractapi

import (
	"context"
	"net/url"
)

const phoneEndpoint = "https://phonevalidation.abstractapi.com/v1/"

var phoneRequiredFields = []string{"phone", "valid", "format", "country"}

type PhoneFormat struct {
	International string `json:"international"`
	Local         string `json:"local"`
}

type PhoneCountry struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

type PhoneValidation struct {
	Phone    string       `json:"phone"`
	Valid    bool         `json:"valid"`
	Format   PhoneFormat  `json:"format"`
	Country  PhoneCountry `json:"country"`
	Location string       `json:"location,omitempty"`
	Type     string       `json:"type,omitempty"`
	Carrier  string       `json:"carrier,omitempty"`
}

// ValidatePhone checks a phone number and resolves its carrier, type
// and location. countryCode is an optional ISO 3166-1 alpha-2 hint for
// numbers given in a local format.
func (c *Client) ValidatePhone(ctx context.Context, phone, countryCode string) (*PhoneValidation, error) {
	query := url.Values{}
	query.Set("phone", phone)

	if countryCode != "" {
		query.Set("country_code", countryCode)
	}

	resp, err := c.request(ctx, phoneEndpoint, query)
	if err != nil {
		return nil, err
	}

	result := &PhoneValidation{}
	if err := decodeRecord(resp.doc, phoneRequiredFields, result); err != nil {
		return nil, err
	}

	return result, nil
}
