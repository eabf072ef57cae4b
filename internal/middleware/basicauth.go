package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
)

// BasicAuth gates a handler behind HTTP basic auth against fixed admin
// credentials. Stateless: the header is re-validated on every request,
// no session or token is ever issued.
//
// Status mapping: missing or malformed header 401, undecodable
// credentials 400, wrong credentials 403.
func BasicAuth(username, password string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				w.Header().Set("WWW-Authenticate", `Basic realm="admissions"`)
				jsonError(w, http.StatusUnauthorized, "Missing authorization")
				return
			}

			scheme, credentials, ok := strings.Cut(auth, " ")
			if !ok || !strings.EqualFold(scheme, "Basic") || credentials == "" {
				jsonError(w, http.StatusUnauthorized, "Invalid auth scheme")
				return
			}

			decoded, err := base64.StdEncoding.DecodeString(credentials)
			if err != nil {
				jsonError(w, http.StatusBadRequest, "Authorization parsing failed")
				return
			}

			user, pass, ok := strings.Cut(string(decoded), ":")
			if !ok {
				jsonError(w, http.StatusUnauthorized, "Invalid authorization format")
				return
			}

			userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
			if !userOK || !passOK {
				jsonError(w, http.StatusForbidden, "Invalid credentials")
				return
			}

			next(w, r)
		}
	}
}
