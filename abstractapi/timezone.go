package abstractapi

import (
	"context"
	"net/url"
	"strconv"
)

const (
	timezoneCurrentEndpoint = "https://timezone.abstractapi.com/v1/current_time/"
	timezoneConvertEndpoint = "https://timezone.abstractapi.com/v1/convert_time/"
)

var (
	timezoneRequiredFields = []string{
		"timezone_name",
		"timezone_abbreviation",
		"timezone_offset",
		"datetime",
		"date",
		"time",
		"year",
		"month",
		"day",
		"hour",
		"minute",
		"second",
	}
	timezoneConversionRequiredFields = []string{
		"base_location",
		"base_timezone",
		"base_datetime",
		"target_location",
		"target_timezone",
		"target_datetime",
	}
)

type TimezoneInfo struct {
	RequestedLocation    string  `json:"requested_location,omitempty"`
	Latitude             float64 `json:"latitude,omitempty"`
	Longitude            float64 `json:"longitude,omitempty"`
	TimezoneName         string  `json:"timezone_name"`
	TimezoneAbbreviation string  `json:"timezone_abbreviation"`
	TimezoneOffset       int     `json:"timezone_offset"`
	TimezoneLocation     string  `json:"timezone_location,omitempty"`
	Datetime             string  `json:"datetime"`
	Date                 string  `json:"date"`
	Time                 string  `json:"time"`
	Year                 string  `json:"year"`
	Month                string  `json:"month"`
	Day                  string  `json:"day"`
	Hour                 string  `json:"hour"`
	Minute               string  `json:"minute"`
	Second               string  `json:"second"`
	GmtOffset            int     `json:"gmt_offset,omitempty"`
	IsDst                bool    `json:"is_dst,omitempty"`
}

type TimezoneConversion struct {
	BaseLocation   string                 `json:"base_location"`
	BaseTimezone   map[string]interface{} `json:"base_timezone"`
	BaseDatetime   string                 `json:"base_datetime"`
	TargetLocation string                 `json:"target_location"`
	TargetTimezone map[string]interface{} `json:"target_timezone"`
	TargetDatetime string                 `json:"target_datetime"`
}

// CurrentTimezone resolves the timezone and current time of a place.
// Either a location name or both coordinates must be given; otherwise
// ErrTimezoneArguments is returned before any request is made.
func (c *Client) CurrentTimezone(ctx context.Context, location string, latitude, longitude *float64) (*TimezoneInfo, error) {
	query := url.Values{}

	switch {
	case location != "":
		query.Set("location", location)
	case latitude != nil && longitude != nil:
		query.Set("latitude", strconv.FormatFloat(*latitude, 'f', -1, 64))
		query.Set("longitude", strconv.FormatFloat(*longitude, 'f', -1, 64))
	default:
		return nil, ErrTimezoneArguments
	}

	resp, err := c.request(ctx, timezoneCurrentEndpoint, query)
	if err != nil {
		return nil, err
	}

	result := &TimezoneInfo{}
	if err := decodeRecord(resp.doc, timezoneRequiredFields, result); err != nil {
		return nil, err
	}

	return result, nil
}

// ConvertTimezone converts an ISO 8601 datetime from the timezone of
// one location into another's.
func (c *Client) ConvertTimezone(ctx context.Context, baseLocation, baseDatetime, targetLocation string) (*TimezoneConversion, error) {
	query := url.Values{}
	query.Set("base_location", baseLocation)
	query.Set("base_datetime", baseDatetime)
	query.Set("target_location", targetLocation)

	resp, err := c.request(ctx, timezoneConvertEndpoint, query)
	if err != nil {
		return nil, err
	}

	result := &TimezoneConversion{}
	if err := decodeRecord(resp.doc, timezoneConversionRequiredFields, result); err != nil {
		return nil, err
	}

	return result, nil
}
