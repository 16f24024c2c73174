package server

import (
	"encoding/json"
	"net/http"
)

// paymentIntentCreate converts the dollar amount from the client into cents
// and relays Stripe's client secret back for confirmation on the frontend.
func (s Server) paymentIntentCreate() http.HandlerFunc {
	type request struct {
		Payment float64 `json:"payment"`
	}
	type response struct {
		ClientSecret string `json:"clientSecret"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("paymentIntentCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		amount := int64(req.Payment * 100)
		pi, err := s.Client.PaymentIntentCreate(r.Context(), amount, "usd", []string{"card"})
		if err != nil {
			s.Logger.Errorf("paymentIntentCreate: Error creating PaymentIntent for amount: %d, err: %v", amount, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{ClientSecret: pi.ClientSecret}, http.StatusOK)
	}
}
