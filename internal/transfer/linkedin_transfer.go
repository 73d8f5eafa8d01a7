package transfer

// OpenID Connect userinfo payload. The stable account id is "sub".
type LinkedinProfile struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
