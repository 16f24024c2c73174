package client

import "net/http"

// Client wraps the outbound HTTP client used to talk to the payment
// processor.
type Client struct {
	*http.Client
	StripeKey     string
	StripeBaseURL string
	Logger        logger
}

type logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

const DefaultStripeBaseURL = "https://api.stripe.com"
