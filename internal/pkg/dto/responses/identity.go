package responses

// ManagementToken is a short-lived bearer token for the identity provider's
// management API. It is acquired fresh per mutation and never cached.
type ManagementToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
	Scope       string `json:"scope,omitempty"`
}
