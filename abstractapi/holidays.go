package abstractapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

const holidaysEndpoint = "https://holidays.abstractapi.com/v1/"

type Holiday struct {
	Name        string `json:"name"`
	NameLocal   string `json:"name_local,omitempty"`
	Language    string `json:"language,omitempty"`
	Description string `json:"description,omitempty"`
	Country     string `json:"country"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	DateYear    string `json:"date_year"`
	DateMonth   string `json:"date_month"`
	DateDay     string `json:"date_day"`
	WeekDay     string `json:"week_day"`
}

type HolidayList struct {
	Holidays []Holiday `json:"holidays"`
}

// Holidays lists public holidays of a country for a year, optionally
// narrowed down to a month or a single day. Pass zero to skip the
// month/day filters.
//
// The endpoint answers with a bare JSON list; an object with a
// holidays field is accepted as well.
func (c *Client) Holidays(ctx context.Context, country string, year, month, day int) (*HolidayList, error) {
	query := url.Values{}
	query.Set("country", country)
	query.Set("year", strconv.Itoa(year))

	if month != 0 {
		query.Set("month", strconv.Itoa(month))
	}

	if day != 0 {
		query.Set("day", strconv.Itoa(day))
	}

	resp, err := c.request(ctx, holidaysEndpoint, query)
	if err != nil {
		return nil, err
	}

	result := &HolidayList{}

	if len(resp.doc) > 0 && resp.doc[0] == '[' {
		if err := json.Unmarshal(resp.doc, &result.Holidays); err != nil {
			return nil, &DecodeError{err: err}
		}

		return result, nil
	}

	if err := decodeRecord(resp.doc, nil, result); err != nil {
		return nil, err
	}

	return result, nil
}
