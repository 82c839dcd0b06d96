package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
)

var _ repository.StoreConfigRepository = (*StoreConfigRepo)(nil)

// StoreConfigRepo implementação do porto StoreConfigRepository sobre PostgreSQL.
type StoreConfigRepo struct {
	q Querier
}

// NewStoreConfigRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewStoreConfigRepository(q Querier) *StoreConfigRepo {
	return &StoreConfigRepo{q: q}
}

// Get obtém uma configuração pela chave.
func (r *StoreConfigRepo) Get(key string) (*entity.StoreConfig, error) {
	var cfg entity.StoreConfig
	err := r.q.QueryRow(context.Background(),
		`SELECT key, value, is_active FROM store_configs WHERE key = $1`, key).
		Scan(&cfg.Key, &cfg.Value, &cfg.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store config: %w", err)
	}
	return &cfg, nil
}

// Upsert grava a configuração (uma linha por chave).
func (r *StoreConfigRepo) Upsert(cfg *entity.StoreConfig) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO store_configs (key, value, is_active) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, is_active = EXCLUDED.is_active`,
		cfg.Key, cfg.Value, cfg.IsActive,
	)
	if err != nil {
		return fmt.Errorf("upsert store config: %w", err)
	}
	return nil
}
