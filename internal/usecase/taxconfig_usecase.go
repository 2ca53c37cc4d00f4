package usecase

import (
	"context"
	"strings"

	"notaria_backoffice/internal/domain/entities"
	"notaria_backoffice/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// ITaxConfigUseCase exposes the tax settings feature: reading the snapshot a
// budget computation would use, and upserting rates/fees per document type
// (or the shared default row).

type ITaxConfigUseCase interface {
	GetForTipo(ctx context.Context, tipo string) (entities.TaxConfig, error)
	Upsert(ctx context.Context, tipo string, cfg entities.TaxConfig) (entities.TaxConfig, error)
}

type TaxConfigUseCase struct {
	repo interfaces.ITaxConfigRepository
}

var _ ITaxConfigUseCase = (*TaxConfigUseCase)(nil)

func NewTaxConfigUseCase(repo interfaces.ITaxConfigRepository) *TaxConfigUseCase {
	return &TaxConfigUseCase{repo: repo}
}

func (u *TaxConfigUseCase) GetForTipo(ctx context.Context, tipo string) (entities.TaxConfig, error) {
	key, err := resolveTaxKey(tipo)
	if err != nil {
		return entities.TaxConfig{}, err
	}

	cfg, found, err := u.repo.Get(ctx, key)
	if err != nil {
		return entities.TaxConfig{}, err
	}
	if !found && key != interfaces.DefaultTaxConfigKey {
		cfg, found, err = u.repo.Get(ctx, interfaces.DefaultTaxConfigKey)
		if err != nil {
			return entities.TaxConfig{}, err
		}
	}
	if !found {
		// Nothing stored yet: zero rates/fees, matching the settings screen
		// before its first save.
		return entities.TaxConfig{}, nil
	}
	return cfg, nil
}

func (u *TaxConfigUseCase) Upsert(ctx context.Context, tipo string, cfg entities.TaxConfig) (entities.TaxConfig, error) {
	key, err := resolveTaxKey(tipo)
	if err != nil {
		return entities.TaxConfig{}, err
	}
	if cfg.TrasladoPorcentaje.IsNegative() || cfg.DerechoRegistro.IsNegative() ||
		cfg.CertificadoCatastral.IsNegative() || cfg.ConstanciasAdeudo.IsNegative() {
		return entities.TaxConfig{}, entities.ErrNegativeAmount
	}

	if err := u.repo.Put(ctx, key, cfg); err != nil {
		return entities.TaxConfig{}, err
	}
	log.WithField("key", key).Info("[settings][usecase] tax config updated")
	return cfg, nil
}

// resolveTaxKey maps an optional tipo to a settings row key. Empty means the
// shared default row; anything else must be a catalog type.
func resolveTaxKey(tipo string) (string, error) {
	tipo = strings.TrimSpace(tipo)
	if tipo == "" || tipo == interfaces.DefaultTaxConfigKey {
		return interfaces.DefaultTaxConfigKey, nil
	}
	if !entities.TipoEscritura(tipo).IsValid() {
		return "", ErrInvalidTipo
	}
	return tipo, nil
}
