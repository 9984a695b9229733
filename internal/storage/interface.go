package storage

import (
	"context"
	"errors"

	"github.com/julianstephens/culturepulse/internal/models"
)

// ErrNotInitialized is returned by Load when the backing database has not been created.
var ErrNotInitialized = errors.New("storage not initialized")

// Provider persists submissions for the self-hosted sheet server.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// AddSubmission stores sub. A submission whose id already exists is ignored.
	AddSubmission(ctx context.Context, sub models.Submission) error
	// GetAllSubmissions returns every stored submission, oldest first.
	GetAllSubmissions(ctx context.Context) ([]models.Submission, error)

	// GetConfigPath returns a display-safe description of where data lives.
	GetConfigPath() string
}
