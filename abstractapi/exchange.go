package abstractapi

import (
	"context"
	"net/url"
)

const (
	exchangeLiveEndpoint       = "https://exchange-rates.abstractapi.com/v1/live/"
	exchangeHistoricalEndpoint = "https://exchange-rates.abstractapi.com/v1/historical/"
)

var exchangeRequiredFields = []string{"base", "last_updated", "exchange_rates"}

type ExchangeRates struct {
	Base          string             `json:"base"`
	LastUpdated   int64              `json:"last_updated"`
	ExchangeRates map[string]float64 `json:"exchange_rates"`
}

type CurrencyConversion struct {
	Base            string             `json:"base"`
	Target          string             `json:"target,omitempty"`
	Date            string             `json:"date,omitempty"`
	LastUpdated     int64              `json:"last_updated"`
	ExchangeRates   map[string]float64 `json:"exchange_rates"`
	ConvertedAmount float64            `json:"converted_amount"`
	Amount          float64            `json:"amount"`
}

// ExchangeRates returns live rates for a base currency. target is an
// optional comma-separated list of currency codes narrowing the rate
// table.
func (c *Client) ExchangeRates(ctx context.Context, base, target string) (*ExchangeRates, error) {
	query := url.Values{}
	query.Set("base", base)

	if target != "" {
		query.Set("target", target)
	}

	resp, err := c.request(ctx, exchangeLiveEndpoint, query)
	if err != nil {
		return nil, err
	}

	result := &ExchangeRates{}
	if err := decodeRecord(resp.doc, exchangeRequiredFields, result); err != nil {
		return nil, err
	}

	return result, nil
}

// ConvertCurrency converts an amount between two currencies using live
// rates, or historical ones if a YYYY-MM-DD date is given. The remote
// side serves the rate table only; the conversion itself is computed
// here.
func (c *Client) ConvertCurrency(ctx context.Context, base, target string, amount float64, date string) (*CurrencyConversion, error) {
	query := url.Values{}
	query.Set("base", base)
	query.Set("target", target)

	endpoint := exchangeLiveEndpoint
	if date != "" {
		endpoint = exchangeHistoricalEndpoint

		query.Set("date", date)
	}

	resp, err := c.request(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	result := &CurrencyConversion{}
	if err := decodeRecord(resp.doc, exchangeRequiredFields, result); err != nil {
		return nil, err
	}

	if rate, ok := result.ExchangeRates[target]; ok {
		result.Amount = amount
		result.ConvertedAmount = amount * rate
	}

	return result, nil
}
