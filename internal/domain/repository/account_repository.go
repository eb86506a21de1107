package repository

import (
	"context"
	"errors"

	"fangate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when a user has no linked account for the
// requested provider.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the operations for provider account persistence.
type AccountRepository interface {
	// FindByUserAndProvider retrieves the account a user has linked at the
	// given provider.
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*entity.Account, error)

	// UpdateTokens replaces the stored token set after a refresh.
	UpdateTokens(ctx context.Context, account *entity.Account) error
}
