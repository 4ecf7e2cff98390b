package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// JWTConfig holds configuration for token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS
// (default 24) from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationHours, err := EnvInt("JWT_EXPIRATION_HOURS", 24)
	if err != nil {
		return nil, err
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: expirationHours}, nil
}

// APIKeyConfig verifies the shared API key clients exchange for a token.
// The key is stored as a bcrypt hash (API_KEY_HASH); a plaintext API_KEY is
// accepted and hashed at startup for development setups.
type APIKeyConfig struct {
	hash string
}

// NewAPIKeyConfig reads API_KEY_HASH or API_KEY from the environment.
func NewAPIKeyConfig() (*APIKeyConfig, error) {
	if hash := os.Getenv("API_KEY_HASH"); hash != "" {
		return &APIKeyConfig{hash: hash}, nil
	}
	plain := os.Getenv("API_KEY")
	if plain == "" {
		return nil, fmt.Errorf("API_KEY_HASH or API_KEY is required but not set")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash API key: %w", err)
	}
	return &APIKeyConfig{hash: string(hash)}, nil
}

// Verify reports whether the presented key matches the stored hash.
func (c *APIKeyConfig) Verify(key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(key)) == nil
}
