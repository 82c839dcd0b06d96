package usecase

import (
	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
)

// StoreConfigUseCase leitura e escrita da configuração da loja (banner).
type StoreConfigUseCase struct {
	repo repository.StoreConfigRepository
}

// NewStoreConfigUseCase constrói o caso de uso.
func NewStoreConfigUseCase(repo repository.StoreConfigRepository) *StoreConfigUseCase {
	return &StoreConfigUseCase{repo: repo}
}

// Banner devolve o banner público. Chave ausente ou inativa devolve valor
// vazio, nunca erro: a vitrine simplesmente não exibe nada.
func (uc *StoreConfigUseCase) Banner() (*dto.BannerResponse, error) {
	cfg, err := uc.repo.Get(entity.ConfigKeyBanner)
	if err != nil {
		return nil, err
	}
	if cfg == nil || !cfg.IsActive {
		return &dto.BannerResponse{}, nil
	}
	return &dto.BannerResponse{Value: cfg.Value, IsActive: true}, nil
}

// SetBanner grava (upsert) o banner do site.
func (uc *StoreConfigUseCase) SetBanner(in dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	cfg := &entity.StoreConfig{Key: entity.ConfigKeyBanner, Value: in.Value, IsActive: in.IsActive}
	if err := uc.repo.Upsert(cfg); err != nil {
		return nil, err
	}
	return &dto.BannerResponse{Value: cfg.Value, IsActive: cfg.IsActive}, nil
}
