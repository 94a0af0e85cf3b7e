package models

// Identity is the request-scoped caller identity parsed from the bearer
// token by the authentication middleware. There is no ambient auth state;
// handlers read this from the request context.
type Identity struct {
	UserID string
	Email  string
	Roles  []string
}
