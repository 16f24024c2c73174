package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pkg/errors"
)

const accessTokenLifetime = 6 * time.Hour

// tokenIssue signs an access token for the identity the client presents.
// The identity itself was already established by the frontend's auth
// provider; this endpoint only converts it into a bearer credential.
func (s Server) tokenIssue() http.HandlerFunc {
	type request struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	type response struct {
		Token string `json:"token"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("tokenIssue: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		at, err := s.createAccessToken(req.Email, req.Name)
		if err != nil {
			s.Logger.Errorf("tokenIssue: Error creating access token for email: %s, err: %v", req.Email, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Token: at}, http.StatusOK)
	}
}

func (s Server) createAccessToken(email string, name string) (string, error) {
	t, err := jwt.NewBuilder().
		Issuer("synaps-server").
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(accessTokenLifetime)).
		Claim("email", email).
		Claim("name", name).
		Build()
	if err != nil {
		return "", errors.Wrapf(err, "error building access token for email: %s", email)
	}
	at, err := jwt.Sign(t, jwt.WithKey(jwa.HS256, s.AuthSecretKey))
	if err != nil {
		return "", errors.Wrapf(err, "error signing access token for email: %s", email)
	}
	return string(at), nil
}
