package auth

import (
	"crypto/subtle"
	"time"

	apperrors "club-stats-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is how long an issued admin token stays valid
const tokenTTL = 24 * time.Hour

// AuthService issues and validates admin tokens. The backend has a single
// admin account configured through the environment.
type AuthService struct {
	jwtSecret     []byte
	adminEmail    string
	adminPassword string
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LoginRequest represents the data needed to log in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret, adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		jwtSecret:     []byte(jwtSecret),
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Login checks the admin credentials and issues a token
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.adminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPassword)) == 1
	if !emailOK || !passwordOK {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(s.adminEmail)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(tokenTTL.Seconds()),
	}, nil
}

// GenerateJWT creates a signed token for the given admin email
func (s *AuthService) GenerateJWT(email string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "club-stats-backend",
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateJWT parses and validates a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
