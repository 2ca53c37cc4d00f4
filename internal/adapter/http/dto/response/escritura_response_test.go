package response

import (
	"testing"
	"time"

	"notaria_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromEscritura(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Escritura{
		ID:              "esc-1",
		NumeroEscritura: "1234",
		FolioInterno:    "F-001",
		Tipo:            entities.TipoCompraventa,
		Estatus:         entities.EstatusPorLiquidar,
		FechaCreacion:   now,
		Participantes: []entities.Persona{
			{ID: "p1", Nombre: "Ana", RolLabel: "Comprador", Side: entities.SideA},
		},
		Presupuesto: entities.Budget{
			ValorBase: decimal.NewFromInt(1000000),
			Total:     decimal.RequireFromString("1120033"),
		},
		Bitacora: []entities.BitacoraEntry{
			{ID: "b1", At: now, User: "maria", Action: "Creación de escritura"},
		},
	}

	resp := FromEscritura(e)

	if resp.TipoLabel != "Escritura de Compraventa" || resp.EstatusLabel != "Pendiente de Pago" {
		t.Fatalf("labels not resolved: %q %q", resp.TipoLabel, resp.EstatusLabel)
	}
	if resp.Presupuesto.Total != "1120033.00" || resp.Presupuesto.ValorBase != "1000000.00" {
		t.Fatalf("money must render with two decimals: %+v", resp.Presupuesto)
	}
	if len(resp.Participantes) != 1 || resp.Participantes[0].Rol != "Comprador" {
		t.Fatalf("unexpected participantes: %+v", resp.Participantes)
	}
	if len(resp.Bitacora) != 1 || resp.Bitacora[0].User != "maria" {
		t.Fatalf("unexpected bitacora: %+v", resp.Bitacora)
	}
	// Empty collections serialize as [] rather than null.
	if resp.Adjuntos == nil {
		t.Fatalf("expected non-nil adjuntos slice")
	}
}

func TestFromEscrituras(t *testing.T) {
	if out := FromEscrituras(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}

func TestFromTaxConfig(t *testing.T) {
	cfg := entities.TaxConfig{
		TrasladoPorcentaje: decimal.RequireFromString("5.5"),
		DerechoRegistro:    decimal.NewFromInt(1200),
	}
	resp := FromTaxConfig(cfg)
	if resp.TrasladoPorcentaje != "5.5" {
		t.Fatalf("rate should keep its precision, got %q", resp.TrasladoPorcentaje)
	}
	if resp.DerechoRegistro != "1200.00" || resp.ConstanciasAdeudo != "0.00" {
		t.Fatalf("fees must render with two decimals: %+v", resp)
	}
}
