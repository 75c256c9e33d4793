package abstractapi

import (
	"context"
	"net/url"
)

const geolocationEndpoint = "https://ipgeolocation.abstractapi.com/v1/"

var geolocationRequiredFields = []string{"ip_address"}

type IPSecurity struct {
	IsVPN bool `json:"is_vpn"`
}

type IPTimezone struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	GmtOffset    int    `json:"gmt_offset"`
	CurrentTime  string `json:"current_time"`
	IsDst        bool   `json:"is_dst"`
}

type IPFlag struct {
	Emoji   string `json:"emoji"`
	Unicode string `json:"unicode"`
	PNG     string `json:"png"`
	SVG     string `json:"svg"`
}

type IPCurrency struct {
	CurrencyName string `json:"currency_name"`
	CurrencyCode string `json:"currency_code"`
}

type IPConnection struct {
	AutonomousSystemNumber       int64  `json:"autonomous_system_number"`
	AutonomousSystemOrganization string `json:"autonomous_system_organization"`
	ConnectionType               string `json:"connection_type"`
	IspName                      string `json:"isp_name"`
	OrganizationName             string `json:"organization_name"`
}

type IPGeolocation struct {
	IPAddress          string        `json:"ip_address"`
	City               string        `json:"city,omitempty"`
	CityGeonameID      int64         `json:"city_geoname_id,omitempty"`
	Region             string        `json:"region,omitempty"`
	RegionISOCode      string        `json:"region_iso_code,omitempty"`
	RegionGeonameID    int64         `json:"region_geoname_id,omitempty"`
	PostalCode         string        `json:"postal_code,omitempty"`
	Country            string        `json:"country,omitempty"`
	CountryCode        string        `json:"country_code,omitempty"`
	CountryGeonameID   int64         `json:"country_geoname_id,omitempty"`
	CountryIsEU        bool          `json:"country_is_eu,omitempty"`
	Continent          string        `json:"continent,omitempty"`
	ContinentCode      string        `json:"continent_code,omitempty"`
	ContinentGeonameID int64         `json:"continent_geoname_id,omitempty"`
	Longitude          float64       `json:"longitude,omitempty"`
	Latitude           float64       `json:"latitude,omitempty"`
	Security           *IPSecurity   `json:"security,omitempty"`
	Timezone           *IPTimezone   `json:"timezone,omitempty"`
	Flag               *IPFlag       `json:"flag,omitempty"`
	Currency           *IPCurrency   `json:"currency,omitempty"`
	Connection         *IPConnection `json:"connection,omitempty"`
}

// GeolocateIP resolves an IP address into city/region/country data with
// timezone, currency and connection details. fields is an optional
// comma-separated allowlist of response fields.
func (c *Client) GeolocateIP(ctx context.Context, ipAddress, fields string) (*IPGeolocation, error) {
	query := url.Values{}
	query.Set("ip_address", ipAddress)

	if fields != "" {
		query.Set("fields", fields)
	}

	resp, err := c.request(ctx, geolocationEndpoint, query)
	if err != nil {
		return nil, err
	}

	result := &IPGeolocation{}
	if err := decodeRecord(resp.doc, geolocationRequiredFields, result); err != nil {
		return nil, err
	}

	return result, nil
}

// IPInfo returns the complete geolocation record, ISP and ASN details
// included.
func (c *Client) IPInfo(ctx context.Context, ipAddress string) (*IPGeolocation, error) {
	return c.GeolocateIP(ctx, ipAddress, "")
}

// GeolocateIPSecurity narrows the response to the security block:
// whether the address belongs to a VPN, proxy, tor exit node or a
// datacenter.
func (c *Client) GeolocateIPSecurity(ctx context.Context, ipAddress string) (*IPGeolocation, error) {
	return c.GeolocateIP(ctx, ipAddress, "security")
}
