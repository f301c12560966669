package token

import "time"

type TokenService interface {
	GenerateAccessToken(userID string, ttl time.Duration) (string, error)
	ParseAccessToken(raw string) (*Claims, error)
}
