package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errors.New("monetary amounts must not be negative")
)

// TaxConfig is the fixed-tax snapshot used by a single budget computation.
// It is read once per computation so a settings update can never produce a
// mixed pre/post snapshot. Rates and fees come from persisted settings,
// keyed by document type.
type TaxConfig struct {
	TrasladoPorcentaje   decimal.Decimal `json:"traslado_porcentaje"`
	DerechoRegistro      decimal.Decimal `json:"derecho_registro"`
	CertificadoCatastral decimal.Decimal `json:"certificado_catastral"`
	ConstanciasAdeudo    decimal.Decimal `json:"constancias_adeudo"`
}

func (c TaxConfig) validate() error {
	for _, v := range []decimal.Decimal{
		c.TrasladoPorcentaje,
		c.DerechoRegistro,
		c.CertificadoCatastral,
		c.ConstanciasAdeudo,
	} {
		if v.IsNegative() {
			return ErrNegativeAmount
		}
	}
	return nil
}

// Budget is the immutable fee/tax breakdown attached to an escritura.
//
// Invariants:
//   - Subtotal = ValorBase + Traslado + DerechoRegistro + CertificadoCatastral + ConstanciasAdeudo
//   - Total    = Subtotal + Honorarios + ISR (ISR already forced to zero for
//     non-eligible types by ComputeBudget)
type Budget struct {
	ValorBase            decimal.Decimal `json:"valor_base"`
	Traslado             decimal.Decimal `json:"traslado"`
	DerechoRegistro      decimal.Decimal `json:"derecho_registro"`
	CertificadoCatastral decimal.Decimal `json:"certificado_catastral"`
	ConstanciasAdeudo    decimal.Decimal `json:"constancias_adeudo"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	Honorarios           decimal.Decimal `json:"honorarios"`
	ISR                  decimal.Decimal `json:"isr"`
	Total                decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeBudget derives the budget breakdown for a deed. All arithmetic is
// decimal so recomputing with identical inputs yields an identical Budget.
//
// The transfer tax is a percentage of the base value, rounded to cents. A
// zero base value is valid (powers of attorney and similar) and collapses
// the subtotal to the fixed fees. ISR is ignored unless the type is
// withholding-eligible, even when a non-zero value is supplied.
func ComputeBudget(tipo TipoEscritura, valorBase, honorarios, isr decimal.Decimal, cfg TaxConfig) (Budget, error) {
	if valorBase.IsNegative() || honorarios.IsNegative() || isr.IsNegative() {
		return Budget{}, ErrNegativeAmount
	}
	if err := cfg.validate(); err != nil {
		return Budget{}, err
	}

	traslado := valorBase.Mul(cfg.TrasladoPorcentaje).Div(oneHundred).Round(2)

	subtotal := valorBase.
		Add(traslado).
		Add(cfg.DerechoRegistro).
		Add(cfg.CertificadoCatastral).
		Add(cfg.ConstanciasAdeudo)

	effectiveISR := decimal.Zero
	if tipo.WithholdingEligible() {
		effectiveISR = isr
	}

	total := subtotal.Add(honorarios).Add(effectiveISR)

	return Budget{
		ValorBase:            valorBase,
		Traslado:             traslado,
		DerechoRegistro:      cfg.DerechoRegistro,
		CertificadoCatastral: cfg.CertificadoCatastral,
		ConstanciasAdeudo:    cfg.ConstanciasAdeudo,
		Subtotal:             subtotal,
		Honorarios:           honorarios,
		ISR:                  effectiveISR,
		Total:                total,
	}, nil
}
