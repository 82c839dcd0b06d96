package repository

import "github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"

// StoreConfigRepository define o porto do armazenamento chave -> valor da loja.
type StoreConfigRepository interface {
	Get(key string) (*entity.StoreConfig, error)
	Upsert(cfg *entity.StoreConfig) error
}
