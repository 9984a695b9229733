package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/culturepulse/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored for the requested user
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey returns the Gemini API key stored in the OS keyring.
func GetAPIKey() (string, error) {
	return get(constants.KeyringAPIKeyUser)
}

// SetAPIKey stores the Gemini API key in the OS keyring.
func SetAPIKey(apiKey string) error {
	if apiKey == "" {
		return errors.New("API key cannot be empty")
	}
	return set(constants.KeyringAPIKeyUser, apiKey)
}

func DeleteAPIKey() error {
	return del(constants.KeyringAPIKeyUser)
}

// GetConnectionString returns the PostgreSQL connection string used by `serve`.
func GetConnectionString() (string, error) {
	return get(constants.KeyringConnectionUser)
}

func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	return set(constants.KeyringConnectionUser, connStr)
}

func DeleteConnectionString() error {
	return del(constants.KeyringConnectionUser)
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring answered, it just has nothing under that name
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

func get(user string) (string, error) {
	secret, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

func set(user, secret string) error {
	if err := keyring.Set(constants.AppName, user, secret); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", user, err)
	}
	return nil
}

func del(user string) error {
	if err := keyring.Delete(constants.AppName, user); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", user, err)
	}
	return nil
}
