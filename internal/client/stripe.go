package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Sakib928/synaps-server/internal/misc"
)

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// PaymentIntentCreate asks Stripe for a new PaymentIntent. Amount is in
// minor currency units (cents).
func (c Client) PaymentIntentCreate(ctx context.Context, amount int64, currency string, paymentMethodTypes []string) (PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	for _, pmt := range paymentMethodTypes {
		form.Add("payment_method_types[]", pmt)
	}

	baseURL := c.StripeBaseURL
	if baseURL == "" {
		baseURL = DefaultStripeBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return PaymentIntent{}, errors.Wrapf(err, "PaymentIntentCreate: error creating HTTP request, amount: %d", amount)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.StripeKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return PaymentIntent{}, errors.Wrapf(err, "PaymentIntentCreate: error doing request, amount: %d", amount)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.Logger.Errorf("PaymentIntentCreate: error closing response body, err: %v", err)
		}
	}()

	respBody, err := io.ReadAll(http.MaxBytesReader(nil, resp.Body, 300000))
	if err != nil {
		return PaymentIntent{}, errors.Wrapf(err, "PaymentIntentCreate: error reading response body, amount: %d", amount)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return PaymentIntent{}, errors.Errorf("PaymentIntentCreate: Stripe returned status %d, amount: %d, body: %s",
			resp.StatusCode, amount, misc.BytesLimit(respBody, 1000))
	}

	pi := PaymentIntent{}
	err = json.Unmarshal(respBody, &pi)
	return pi, errors.Wrapf(err, "PaymentIntentCreate: error unmarshalling response body: %s", misc.BytesLimit(respBody, 1000))
}
