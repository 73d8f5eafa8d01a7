package transfer

import "github.com/golang-jwt/jwt/v5"

// SessionClaims back the login cookie. AgencyID pins the session to the
// tenant it was created on.
type SessionClaims struct {
	UserID    string `json:"uid"`
	AgencyID  string `json:"agency"`
	Superuser bool   `json:"su,omitempty"`
	jwt.RegisteredClaims
}

// ConnectClaims are the signed OAuth state parameter: they identify which
// user, agency and client a provider callback belongs to and double as the
// CSRF check.
type ConnectClaims struct {
	UserID   string `json:"uid"`
	AgencyID string `json:"agency"`
	ClientID string `json:"client"`
	Platform string `json:"platform"`
	jwt.RegisteredClaims
}
