package alias

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/keyblasters/boostbot/internal/repositories/alias Repository

import (
	"context"
)

// Repository defines the interface for realm alias persistence
type Repository interface {
	// SetAlias creates or overwrites an alias for a realm name
	SetAlias(ctx context.Context, input *SetAliasInput) error

	// GetAlias resolves an alias to its realm name
	GetAlias(ctx context.Context, input *GetAliasInput) (*GetAliasOutput, error)

	// ListAliases returns every stored alias
	ListAliases(ctx context.Context, input *ListAliasesInput) (*ListAliasesOutput, error)
}
