package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrOAuthAccountNotFound = errors.New("no account linked to this google identity")
)
