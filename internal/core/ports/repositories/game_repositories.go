package repositories

import (
	"context"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
)

// GameReader reads the game catalog.
type GameReader interface {
	// FindGameByCode returns ErrNotFound when the code is not in the catalog.
	FindGameByCode(ctx context.Context, gameCode string) (*domain.Game, error)

	// FindProviderNameByProductCode returns the provider name of a product, or ErrNotFound.
	FindProviderNameByProductCode(ctx context.Context, productCode int64) (string, error)
}
