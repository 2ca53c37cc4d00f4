package request

import "notaria_backoffice/internal/domain/entities"

// TaxConfigRequest carries the settings screen's rates and fees as decimal
// strings. Empty fields resolve to zero, the same default the screen shows.
type TaxConfigRequest struct {
	TrasladoPorcentaje   string `json:"traslado_porcentaje"`
	DerechoRegistro      string `json:"derecho_registro"`
	CertificadoCatastral string `json:"certificado_catastral"`
	ConstanciasAdeudo    string `json:"constancias_adeudo"`
}

func (r TaxConfigRequest) Resolve() (entities.TaxConfig, error) {
	var cfg entities.TaxConfig
	var err error
	if cfg.TrasladoPorcentaje, err = resolveMonto(r.TrasladoPorcentaje); err != nil {
		return entities.TaxConfig{}, err
	}
	if cfg.DerechoRegistro, err = resolveMonto(r.DerechoRegistro); err != nil {
		return entities.TaxConfig{}, err
	}
	if cfg.CertificadoCatastral, err = resolveMonto(r.CertificadoCatastral); err != nil {
		return entities.TaxConfig{}, err
	}
	if cfg.ConstanciasAdeudo, err = resolveMonto(r.ConstanciasAdeudo); err != nil {
		return entities.TaxConfig{}, err
	}
	return cfg, nil
}
