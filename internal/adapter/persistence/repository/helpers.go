package repository

import (
	"os"
	"strings"
	"time"

	"notaria_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func joinAnd(parts []string) string {
	return strings.Join(parts, " AND ")
}

// parseDecimal treats an absent attribute as zero; a malformed one is a
// data error worth surfacing.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// parseTimestamp mirrors parseDecimal for stored RFC 3339 timestamps:
// absent means zero, malformed is a data error.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func fromPresupuestoItem(it presupuestoItem) (entities.Budget, error) {
	var b entities.Budget
	var err error
	if b.ValorBase, err = parseDecimal(it.ValorBase); err != nil {
		return entities.Budget{}, err
	}
	if b.Traslado, err = parseDecimal(it.Traslado); err != nil {
		return entities.Budget{}, err
	}
	if b.DerechoRegistro, err = parseDecimal(it.DerechoRegistro); err != nil {
		return entities.Budget{}, err
	}
	if b.CertificadoCatastral, err = parseDecimal(it.CertificadoCatastral); err != nil {
		return entities.Budget{}, err
	}
	if b.ConstanciasAdeudo, err = parseDecimal(it.ConstanciasAdeudo); err != nil {
		return entities.Budget{}, err
	}
	if b.Subtotal, err = parseDecimal(it.Subtotal); err != nil {
		return entities.Budget{}, err
	}
	if b.Honorarios, err = parseDecimal(it.Honorarios); err != nil {
		return entities.Budget{}, err
	}
	if b.ISR, err = parseDecimal(it.ISR); err != nil {
		return entities.Budget{}, err
	}
	if b.Total, err = parseDecimal(it.Total); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}
