package abstractapi

import (
	"context"
	"net/url"
)

const companyEndpoint = "https://companyenrichment.abstractapi.com/v1/"

var companyRequiredFields = []string{"domain"}

type CompanyInfo struct {
	Name           string `json:"name,omitempty"`
	Domain         string `json:"domain"`
	YearFounded    int    `json:"year_founded,omitempty"`
	Industry       string `json:"industry,omitempty"`
	EmployeesCount int64  `json:"employees_count,omitempty"`
	Locality       string `json:"locality,omitempty"`
	Country        string `json:"country,omitempty"`
	LinkedinURL    string `json:"linkedin_url,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
}

// CompanyInfo enriches a domain name with company data: industry,
// headcount, founding year and social profiles.
func (c *Client) CompanyInfo(ctx context.Context, domain string) (*CompanyInfo, error) {
	query := url.Values{}
	query.Set("domain", domain)

	resp, err := c.request(ctx, companyEndpoint, query)
	if err != nil {
		return nil, err
	}

	result := &CompanyInfo{}
	if err := decodeRecord(resp.doc, companyRequiredFields, result); err != nil {
		return nil, err
	}

	return result, nil
}
