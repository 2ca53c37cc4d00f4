package request

import (
	"errors"
	"testing"
	"time"

	"notaria_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCreateEscrituraRequest_ResolveMontos(t *testing.T) {
	t.Run("parses decimal strings", func(t *testing.T) {
		r := CreateEscrituraRequest{ValorBase: "1000000.00", Honorarios: " 50000 ", ISR: "20000"}
		valorBase, honorarios, isr, err := r.ResolveMontos()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valorBase.Equal(decimal.NewFromInt(1000000)) || !honorarios.Equal(decimal.NewFromInt(50000)) || !isr.Equal(decimal.NewFromInt(20000)) {
			t.Fatalf("unexpected amounts: %s %s %s", valorBase, honorarios, isr)
		}
	})

	t.Run("empty fields resolve to zero", func(t *testing.T) {
		r := CreateEscrituraRequest{}
		valorBase, honorarios, isr, err := r.ResolveMontos()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valorBase.IsZero() || !honorarios.IsZero() || !isr.IsZero() {
			t.Fatalf("expected zeros, got %s %s %s", valorBase, honorarios, isr)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		r := CreateEscrituraRequest{ValorBase: "un millón"}
		if _, _, _, err := r.ResolveMontos(); !errors.Is(err, ErrInvalidMonto) {
			t.Fatalf("expected ErrInvalidMonto, got %v", err)
		}
	})
}

func TestResolveFechaFirma(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		r := CreateEscrituraRequest{FechaFirma: "2026-03-15"}
		got, err := r.ResolveFechaFirma()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("rfc3339 timestamp", func(t *testing.T) {
		r := CreateEscrituraRequest{FechaFirma: "2026-03-15T10:30:00-06:00"}
		got, err := r.ResolveFechaFirma()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || !got.Equal(time.Date(2026, 3, 15, 16, 30, 0, 0, time.UTC)) {
			t.Fatalf("unexpected time %v", got)
		}
	})

	t.Run("empty means unset", func(t *testing.T) {
		r := CreateEscrituraRequest{}
		got, err := r.ResolveFechaFirma()
		if err != nil || got != nil {
			t.Fatalf("expected nil, got %v, %v", got, err)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		r := CreateEscrituraRequest{FechaFirma: "mañana"}
		if _, err := r.ResolveFechaFirma(); !errors.Is(err, ErrInvalidFecha) {
			t.Fatalf("expected ErrInvalidFecha, got %v", err)
		}
	})
}

func TestParticipantRequest_ToPersona(t *testing.T) {
	p := ParticipantRequest{Nombre: "Ana", Rol: "Compradora", Telefono: "5215512345678"}
	persona := p.ToPersona()
	if persona.Side != entities.SideA {
		t.Fatalf("expected side defaulted to A, got %s", persona.Side)
	}
	if persona.RolLabel != "Compradora" {
		t.Fatalf("unexpected rol %q", persona.RolLabel)
	}
}

func TestParticipantCommandRequest_ToCommand(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		cmd := ParticipantCommandRequest{
			Op:   "add",
			Data: &ParticipantRequest{Nombre: "Luis", Side: "B"},
		}.ToCommand()
		if cmd.Op != entities.ParticipantAdd || cmd.Data == nil || cmd.Data.Side != entities.SideB {
			t.Fatalf("unexpected command: %+v", cmd)
		}
	})

	t.Run("update with side patch", func(t *testing.T) {
		side := "B"
		tel := "5215500000000"
		cmd := ParticipantCommandRequest{
			Op:    "update",
			ID:    "p1",
			Patch: &ParticipantPatchRequest{Side: &side, Telefono: &tel},
		}.ToCommand()
		if cmd.Op != entities.ParticipantUpdate || cmd.ID != "p1" || cmd.Patch == nil {
			t.Fatalf("unexpected command: %+v", cmd)
		}
		if cmd.Patch.Side == nil || *cmd.Patch.Side != entities.SideB {
			t.Fatalf("side patch lost: %+v", cmd.Patch)
		}
		if cmd.Patch.Nombre != nil {
			t.Fatalf("absent fields must stay nil")
		}
	})

	t.Run("remove", func(t *testing.T) {
		cmd := ParticipantCommandRequest{Op: "remove", ID: "p2"}.ToCommand()
		if cmd.Op != entities.ParticipantRemove || cmd.ID != "p2" || cmd.Data != nil || cmd.Patch != nil {
			t.Fatalf("unexpected command: %+v", cmd)
		}
	})
}
