package model

// TokenManager generates and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(principal Principal) (string, error)
	ParseAccessToken(token string) (Principal, error)
}
