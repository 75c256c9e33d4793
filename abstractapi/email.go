package abstractapi

import (
	"context"
	"net/url"
)

const emailEndpoint = "https://emailvalidation.abstractapi.com/v1/"

var emailRequiredFields = []string{
	"email",
	"deliverability",
	"quality_score",
	"is_valid_format",
	"is_free_email",
	"is_disposable_email",
	"is_role_email",
	"is_catchall_email",
	"is_mx_found",
	"is_smtp_valid",
}

// BoolFlag is how Abstract API spells a boolean: a value attached to
// its textual representation.
type BoolFlag struct {
	Value bool   `json:"value"`
	Text  string `json:"text"`
}

type EmailValidation struct {
	Email             string   `json:"email"`
	Autocorrect       string   `json:"autocorrect,omitempty"`
	Deliverability    string   `json:"deliverability"`
	QualityScore      float64  `json:"quality_score"`
	IsValidFormat     BoolFlag `json:"is_valid_format"`
	IsFreeEmail       BoolFlag `json:"is_free_email"`
	IsDisposableEmail BoolFlag `json:"is_disposable_email"`
	IsRoleEmail       BoolFlag `json:"is_role_email"`
	IsCatchallEmail   BoolFlag `json:"is_catchall_email"`
	IsMxFound         BoolFlag `json:"is_mx_found"`
	IsSmtpValid       BoolFlag `json:"is_smtp_valid"`
}

// ValidateEmail checks an email address for format validity,
// deliverability and mailbox quality.
func (c *Client) ValidateEmail(ctx context.Context, email string) (*EmailValidation, error) {
	query := url.Values{}
	query.Set("email", email)

	resp, err := c.request(ctx, emailEndpoint, query)
	if err != nil {
		return nil, err
	}

	result := &EmailValidation{}
	if err := decodeRecord(resp.doc, emailRequiredFields, result); err != nil {
		return nil, err
	}

	return result, nil
}
