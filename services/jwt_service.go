package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StaffJWTClaims represents the JWT claims for staff tokens
type StaffJWTClaims struct {
	StaffID string `json:"staff_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and verification
type JWTService struct {
	secretKey string
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{
		secretKey: secretKey,
	}
	return nil
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	if jwtService == nil {
		// Fallback to environment variable if not initialized
		secretKey := os.Getenv("JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: secretKey}
	}
	return jwtService
}

// GenerateStaffJWT creates a new JWT token for a staff account.
// Token expires in 24 hours
func (j *JWTService) GenerateStaffJWT(staffID, email, name, role string) (string, error) {
	if staffID == "" || email == "" || role == "" {
		return "", errors.New("staffID, email and role cannot be empty")
	}

	now := time.Now()
	expiresAt := now.Add(24 * time.Hour)

	claims := StaffJWTClaims{
		StaffID: staffID,
		Email:   email,
		Name:    name,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "verve-storefront",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyStaffJWT verifies and parses a JWT token.
// Returns claims if valid, error if invalid or expired
func (j *JWTService) VerifyStaffJWT(tokenString string) (*StaffJWTClaims, error) {
	claims := &StaffJWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.StaffID == "" || claims.Email == "" || claims.Role == "" {
		return nil, errors.New("token missing required claims")
	}

	return claims, nil
}

// Convenience functions that use the global service

// GenerateStaffJWT generates a JWT token using the global JWT service
func GenerateStaffJWT(staffID, email, name, role string) (string, error) {
	return GetJWTService().GenerateStaffJWT(staffID, email, name, role)
}

// VerifyStaffJWT verifies a JWT token using the global JWT service
func VerifyStaffJWT(tokenString string) (*StaffJWTClaims, error) {
	return GetJWTService().VerifyStaffJWT(tokenString)
}
