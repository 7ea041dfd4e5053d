package auth

// TokenManager issues and verifies identity tokens.
type TokenManager interface {
	GenerateToken(email string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var _ TokenManager = (*JWTManager)(nil)
