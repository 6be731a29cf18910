package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxGameRepository reads the game catalog.
type PgxGameRepository struct {
	pool *pgxpool.Pool
}

func newPgxGameRepository(pool *pgxpool.Pool) portsrepo.GameReader {
	return &PgxGameRepository{pool: pool}
}

// FindGameByCode looks a game up by its provider game code.
func (r *PgxGameRepository) FindGameByCode(ctx context.Context, gameCode string) (*domain.Game, error) {
	var g domain.Game
	err := r.pool.QueryRow(ctx, `
		SELECT game_code, game_name, game_type, product_code, provider
		FROM game_lists
		WHERE game_code = $1
		LIMIT 1`, gameCode,
	).Scan(&g.GameCode, &g.GameName, &g.GameType, &g.ProductCode, &g.ProviderName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find game %s: %w", gameCode, err)
	}
	return &g, nil
}

// FindProviderNameByProductCode returns the provider name of a product.
func (r *PgxGameRepository) FindProviderNameByProductCode(ctx context.Context, productCode int64) (string, error) {
	var provider string
	err := r.pool.QueryRow(ctx,
		`SELECT provider FROM game_lists WHERE product_code = $1 LIMIT 1`, productCode,
	).Scan(&provider)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find provider of product %d: %w", productCode, err)
	}
	return provider, nil
}
