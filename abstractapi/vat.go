package abstractapi

import (
	"context"
	"net/url"
)

const vatEndpoint = "https://vatapi.abstractapi.com/v1/"

var vatRequiredFields = []string{"vat_number", "valid", "company", "country"}

type VATCompany struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type VATCountry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type VATValidation struct {
	VATNumber string     `json:"vat_number"`
	Valid     bool       `json:"valid"`
	Company   VATCompany `json:"company"`
	Country   VATCountry `json:"country"`
}

// ValidateVAT checks an EU VAT number and returns the registered
// company, e.g. "SE556656688001".
func (c *Client) ValidateVAT(ctx context.Context, vatNumber string) (*VATValidation, error) {
	query := url.Values{}
	query.Set("vat_number", vatNumber)

	resp, err := c.request(ctx, vatEndpoint, query)
	if err != nil {
		return nil, err
	}

	result := &VATValidation{}
	if err := decodeRecord(resp.doc, vatRequiredFields, result); err != nil {
		return nil, err
	}

	return result, nil
}
