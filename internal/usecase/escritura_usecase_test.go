package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"notaria_backoffice/internal/domain/entities"
	mock_interfaces "notaria_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func testTaxConfig() entities.TaxConfig {
	return entities.TaxConfig{
		TrasladoPorcentaje:   decimal.NewFromInt(5),
		DerechoRegistro:      decimal.NewFromInt(10),
		CertificadoCatastral: decimal.NewFromInt(11),
		ConstanciasAdeudo:    decimal.NewFromInt(12),
	}
}

func testEscritura() entities.Escritura {
	now := time.Now().UTC().Add(-time.Hour)
	return entities.Escritura{
		ID:              "esc-1",
		NumeroEscritura: "1234",
		FolioInterno:    "F-001",
		Tipo:            entities.TipoCompraventa,
		Estatus:         entities.EstatusPorLiquidar,
		FechaCreacion:   now,
		Participantes: []entities.Persona{
			{ID: "p1", Nombre: "Ana López", RolLabel: "Comprador", Telefono: "5215512345678", Side: entities.SideA},
			{ID: "p2", Nombre: "Luis Pérez", RolLabel: "Vendedor", Side: entities.SideB},
		},
		Presupuesto: entities.Budget{
			ValorBase:  decimal.NewFromInt(1000000),
			Honorarios: decimal.NewFromInt(50000),
			ISR:        decimal.NewFromInt(20000),
			Total:      decimal.NewFromInt(1120033),
		},
		Bitacora: []entities.BitacoraEntry{
			{ID: "b1", At: now, User: "maria", Action: "Creación de escritura"},
		},
		UpdatedAt: now,
	}
}

func validCreateCommand() CreateEscrituraCommand {
	return CreateEscrituraCommand{
		Tipo:            entities.TipoCompraventa,
		FolioInterno:    "F-001",
		NumeroEscritura: "1234",
		Participantes: []entities.Persona{
			{Nombre: "Ana López", Side: entities.SideA, Telefono: "5215512345678"},
			{Nombre: "Luis Pérez", Side: entities.SideB},
		},
		ValorBase:  decimal.NewFromInt(1000000),
		Honorarios: decimal.NewFromInt(50000),
		ISR:        decimal.NewFromInt(20000),
		Actor:      "maria",
	}
}

func TestEscrituraUseCase_Create(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		cmd := validCreateCommand()
		cmd.Actor = "   "
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("unknown tipo", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		cmd := validCreateCommand()
		cmd.Tipo = "hipoteca"
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidTipo) {
			t.Fatalf("expected ErrInvalidTipo, got %v", err)
		}
	})

	t.Run("empty folio", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		cmd := validCreateCommand()
		cmd.FolioInterno = "  "
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrEmptyFolio) {
			t.Fatalf("expected ErrEmptyFolio, got %v", err)
		}
	})

	t.Run("empty numero", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		cmd := validCreateCommand()
		cmd.NumeroEscritura = ""
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrEmptyNumeroEscritura) {
			t.Fatalf("expected ErrEmptyNumeroEscritura, got %v", err)
		}
	})

	t.Run("unknown estatus", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		cmd := validCreateCommand()
		cmd.Estatus = "archivado"
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("donacion without participants never reaches the repo", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		cmd := validCreateCommand()
		cmd.Tipo = entities.TipoDonacion
		cmd.Participantes = nil
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrMissingPersonaA) {
			t.Fatalf("expected ErrMissingPersonaA, got %v", err)
		}
	})

	t.Run("compraventa without second party", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		cmd := validCreateCommand()
		cmd.Participantes = []entities.Persona{{Nombre: "Ana", Side: entities.SideA}}
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrMissingPersonaB) {
			t.Fatalf("expected ErrMissingPersonaB, got %v", err)
		}
	})

	t.Run("duplicate folio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().ExistsByFolio(gomock.Any(), "F-001").Return(true, nil)

		_, err := uc.Create(context.Background(), validCreateCommand())
		if !errors.Is(err, ErrFolioAlreadyExists) {
			t.Fatalf("expected ErrFolioAlreadyExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		taxRepo := mock_interfaces.NewMockITaxConfigRepository(ctrl)
		uc := NewEscrituraUseCase(repo, taxRepo, nil)

		repo.EXPECT().ExistsByFolio(gomock.Any(), "F-001").Return(false, nil)
		taxRepo.EXPECT().Get(gomock.Any(), "compraventa").Return(testTaxConfig(), true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Escritura{})).DoAndReturn(
			func(_ context.Context, e entities.Escritura) (entities.Escritura, error) {
				if e.ID == "" || e.FolioInterno != "F-001" || e.NumeroEscritura != "1234" {
					t.Fatalf("unexpected escritura: %+v", e)
				}
				if e.Estatus != entities.EstatusPorLiquidar {
					t.Fatalf("expected default estatus por-liquidar, got %s", e.Estatus)
				}
				if e.ReciboEnviado || e.FechaUltimoEnvio != nil {
					t.Fatalf("new escritura must start without receipt state")
				}
				if !e.Presupuesto.Total.Equal(decimal.NewFromInt(1120033)) {
					t.Fatalf("expected total 1120033, got %s", e.Presupuesto.Total)
				}
				if len(e.Bitacora) != 1 || e.Bitacora[0].User != "maria" {
					t.Fatalf("expected one bitácora entry by maria, got %+v", e.Bitacora)
				}
				for _, p := range e.Participantes {
					if p.ID == "" {
						t.Fatalf("participant without id: %+v", p)
					}
				}
				return e, nil
			},
		)

		created, err := uc.Create(context.Background(), validCreateCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("tax settings fall back to default row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		taxRepo := mock_interfaces.NewMockITaxConfigRepository(ctrl)
		uc := NewEscrituraUseCase(repo, taxRepo, nil)

		repo.EXPECT().ExistsByFolio(gomock.Any(), "F-001").Return(false, nil)
		taxRepo.EXPECT().Get(gomock.Any(), "compraventa").Return(entities.TaxConfig{}, false, nil)
		taxRepo.EXPECT().Get(gomock.Any(), "default").Return(testTaxConfig(), true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Escritura) (entities.Escritura, error) {
				if !e.Presupuesto.Traslado.Equal(decimal.NewFromInt(50000)) {
					t.Fatalf("expected default-row rate applied, got traslado %s", e.Presupuesto.Traslado)
				}
				return e, nil
			},
		)

		if _, err := uc.Create(context.Background(), validCreateCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative amount rejected before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		taxRepo := mock_interfaces.NewMockITaxConfigRepository(ctrl)
		uc := NewEscrituraUseCase(repo, taxRepo, nil)

		repo.EXPECT().ExistsByFolio(gomock.Any(), "F-001").Return(false, nil)
		taxRepo.EXPECT().Get(gomock.Any(), "compraventa").Return(testTaxConfig(), true, nil)

		cmd := validCreateCommand()
		cmd.ValorBase = decimal.NewFromInt(-1)
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, entities.ErrNegativeAmount) {
			t.Fatalf("expected ErrNegativeAmount, got %v", err)
		}
	})
}

func TestEscrituraUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEscrituraID) {
			t.Fatalf("expected ErrInvalidEscrituraID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-404").Return(entities.Escritura{}, nil)

		_, err := uc.GetByID(context.Background(), "esc-404")
		if !errors.Is(err, ErrEscrituraNotFound) {
			t.Fatalf("expected ErrEscrituraNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)

		got, err := uc.GetByID(context.Background(), " esc-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "esc-1" {
			t.Fatalf("unexpected escritura: %+v", got)
		}
	})
}

func TestEscrituraUseCase_List(t *testing.T) {
	t.Run("invalid filter estatus", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		_, err := uc.List(context.Background(), entities.EscrituraFilter{Estatus: "archivado"})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("invalid filter tipo", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		_, err := uc.List(context.Background(), entities.EscrituraFilter{Tipo: "hipoteca"})
		if !errors.Is(err, ErrInvalidTipo) {
			t.Fatalf("expected ErrInvalidTipo, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		filter := entities.EscrituraFilter{Estatus: entities.EstatusLiquidado}
		repo.EXPECT().List(gomock.Any(), filter).Return([]entities.Escritura{testEscritura()}, nil)

		out, err := uc.List(context.Background(), filter)
		if err != nil || len(out) != 1 {
			t.Fatalf("unexpected result: %v, %v", out, err)
		}
	})
}

func TestEscrituraUseCase_SetStatus(t *testing.T) {
	t.Run("unknown estatus never loads the aggregate", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		_, err := uc.SetStatus(context.Background(), "esc-1", "archivado", "maria")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		_, err := uc.SetStatus(context.Background(), "esc-1", entities.EstatusLiquidado, "")
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("direct jump across the catalog is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		stored := testEscritura()
		before := len(stored.Bitacora)
		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Escritura) (entities.Escritura, error) {
				if e.Estatus != entities.EstatusEntregado {
					t.Fatalf("expected entregado, got %s", e.Estatus)
				}
				if len(e.Bitacora) != before+1 {
					t.Fatalf("expected exactly one new bitácora entry, got %d", len(e.Bitacora))
				}
				last := e.Bitacora[len(e.Bitacora)-1]
				if last.User != "maria" || last.Detail != `Estatus actualizado a "Entregado"` {
					t.Fatalf("unexpected entry: %+v", last)
				}
				return e, nil
			},
		)

		got, err := uc.SetStatus(context.Background(), "esc-1", entities.EstatusEntregado, "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Estatus != entities.EstatusEntregado {
			t.Fatalf("unexpected estatus %s", got.Estatus)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-404").Return(entities.Escritura{}, nil)

		_, err := uc.SetStatus(context.Background(), "esc-404", entities.EstatusLiquidado, "maria")
		if !errors.Is(err, ErrEscrituraNotFound) {
			t.Fatalf("expected ErrEscrituraNotFound, got %v", err)
		}
	})

	t.Run("deleted between load and save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Escritura{}, nil)

		_, err := uc.SetStatus(context.Background(), "esc-1", entities.EstatusLiquidado, "maria")
		if !errors.Is(err, ErrEscrituraNotFound) {
			t.Fatalf("expected ErrEscrituraNotFound, got %v", err)
		}
	})
}

func TestEscrituraUseCase_UpdateBudget(t *testing.T) {
	t.Run("recomputes from stored type and settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		taxRepo := mock_interfaces.NewMockITaxConfigRepository(ctrl)
		uc := NewEscrituraUseCase(repo, taxRepo, nil)

		stored := testEscritura()
		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(stored, nil)
		taxRepo.EXPECT().Get(gomock.Any(), "compraventa").Return(testTaxConfig(), true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Escritura) (entities.Escritura, error) {
				if !e.Presupuesto.ValorBase.Equal(decimal.NewFromInt(500000)) {
					t.Fatalf("expected new valor base, got %s", e.Presupuesto.ValorBase)
				}
				if !e.Presupuesto.Traslado.Equal(decimal.NewFromInt(25000)) {
					t.Fatalf("expected traslado 25000, got %s", e.Presupuesto.Traslado)
				}
				last := e.Bitacora[len(e.Bitacora)-1]
				if last.Action != "Actualización de presupuesto" {
					t.Fatalf("unexpected action %q", last.Action)
				}
				return e, nil
			},
		)

		_, err := uc.UpdateBudget(context.Background(), "esc-1", BudgetInput{
			ValorBase:  decimal.NewFromInt(500000),
			Honorarios: decimal.NewFromInt(20000),
			ISR:        decimal.NewFromInt(10000),
		}, "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deleted between load and save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		taxRepo := mock_interfaces.NewMockITaxConfigRepository(ctrl)
		uc := NewEscrituraUseCase(repo, taxRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)
		taxRepo.EXPECT().Get(gomock.Any(), "compraventa").Return(testTaxConfig(), true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Escritura{}, nil)

		_, err := uc.UpdateBudget(context.Background(), "esc-1", BudgetInput{
			ValorBase: decimal.NewFromInt(100),
		}, "maria")
		if !errors.Is(err, ErrEscrituraNotFound) {
			t.Fatalf("expected ErrEscrituraNotFound, got %v", err)
		}
	})

	t.Run("negative input leaves stored aggregate untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		taxRepo := mock_interfaces.NewMockITaxConfigRepository(ctrl)
		uc := NewEscrituraUseCase(repo, taxRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)
		taxRepo.EXPECT().Get(gomock.Any(), "compraventa").Return(testTaxConfig(), true, nil)

		_, err := uc.UpdateBudget(context.Background(), "esc-1", BudgetInput{
			ValorBase: decimal.NewFromInt(-5),
		}, "maria")
		if !errors.Is(err, entities.ErrNegativeAmount) {
			t.Fatalf("expected ErrNegativeAmount, got %v", err)
		}
	})
}

func TestEscrituraUseCase_Update(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		_, err := uc.Update(context.Background(), "esc-1", UpdateEscrituraCommand{})
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("patches general data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Escritura) (entities.Escritura, error) {
				if e.NumeroEscritura != "5678" || e.Notas != "revisar linderos" {
					t.Fatalf("unexpected patch result: %+v", e)
				}
				return e, nil
			},
		)

		numero := " 5678 "
		notas := "revisar linderos"
		_, err := uc.Update(context.Background(), "esc-1", UpdateEscrituraCommand{
			NumeroEscritura: &numero,
			Notas:           &notas,
			Actor:           "maria",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("participant commands applied and validated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)

		// Removing the only side-B participant from a compraventa must fail.
		_, err := uc.Update(context.Background(), "esc-1", UpdateEscrituraCommand{
			Participantes: []entities.ParticipantCommand{
				{Op: entities.ParticipantRemove, ID: "p2"},
			},
			Actor: "maria",
		})
		if !errors.Is(err, ErrMissingPersonaB) {
			t.Fatalf("expected ErrMissingPersonaB, got %v", err)
		}
	})

	t.Run("deleted between load and save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Escritura{}, nil)

		notas := "x"
		_, err := uc.Update(context.Background(), "esc-1", UpdateEscrituraCommand{Notas: &notas, Actor: "maria"})
		if !errors.Is(err, ErrEscrituraNotFound) {
			t.Fatalf("expected ErrEscrituraNotFound, got %v", err)
		}
	})

	t.Run("tipo change recomputes budget and drops withholding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		taxRepo := mock_interfaces.NewMockITaxConfigRepository(ctrl)
		uc := NewEscrituraUseCase(repo, taxRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)
		taxRepo.EXPECT().Get(gomock.Any(), "testamento").Return(testTaxConfig(), true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Escritura) (entities.Escritura, error) {
				if e.Tipo != entities.TipoTestamento {
					t.Fatalf("expected testamento, got %s", e.Tipo)
				}
				if !e.Presupuesto.ISR.IsZero() {
					t.Fatalf("expected isr dropped, got %s", e.Presupuesto.ISR)
				}
				if !e.Presupuesto.ValorBase.Equal(decimal.NewFromInt(1000000)) {
					t.Fatalf("valor base should survive the type change")
				}
				return e, nil
			},
		)

		tipo := entities.TipoTestamento
		_, err := uc.Update(context.Background(), "esc-1", UpdateEscrituraCommand{Tipo: &tipo, Actor: "maria"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEscrituraUseCase_SendReceipt(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		_, err := uc.SendReceipt(context.Background(), "esc-1", " ")
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("no side-A participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		stored := testEscritura()
		stored.Participantes = []entities.Persona{{ID: "p2", Nombre: "Luis", Side: entities.SideB}}
		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(stored, nil)

		_, err := uc.SendReceipt(context.Background(), "esc-1", "maria")
		if !errors.Is(err, ErrMissingPersonaA) {
			t.Fatalf("expected ErrMissingPersonaA, got %v", err)
		}
	})

	t.Run("side-A participant without phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		stored := testEscritura()
		stored.Participantes[0].Telefono = "  "
		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(stored, nil)

		_, err := uc.SendReceipt(context.Background(), "esc-1", "maria")
		if !errors.Is(err, ErrMissingPhone) {
			t.Fatalf("expected ErrMissingPhone, got %v", err)
		}
	})

	t.Run("send success stamps bookkeeping before delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		notifier := mock_interfaces.NewMockIReceiptNotifier(ctrl)
		uc := NewEscrituraUseCase(repo, nil, notifier)

		stored := testEscritura()
		before := len(stored.Bitacora)
		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Escritura) (entities.Escritura, error) {
				if !e.ReciboEnviado || e.FechaUltimoEnvio == nil {
					t.Fatalf("expected receipt bookkeeping before delivery")
				}
				if len(e.Bitacora) != before+1 {
					t.Fatalf("expected one new bitácora entry")
				}
				return e, nil
			},
		)
		notifier.EXPECT().DeliverReceipt(gomock.Any(), "5215512345678",
			"Recibo de escritura #1234 (folio F-001). Cliente: Ana López. Total a pagar: $1120033.00 MXN.").
			Return(nil)

		got, err := uc.SendReceipt(context.Background(), "esc-1", "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.ReciboEnviado {
			t.Fatalf("expected ReciboEnviado true")
		}
	})

	t.Run("resend stamps a fresh envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		notifier := mock_interfaces.NewMockIReceiptNotifier(ctrl)
		uc := NewEscrituraUseCase(repo, nil, notifier)

		previous := time.Now().UTC().Add(-24 * time.Hour)
		stored := testEscritura()
		stored.ReciboEnviado = true
		stored.FechaUltimoEnvio = &previous
		before := len(stored.Bitacora)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Escritura) (entities.Escritura, error) {
				if e.FechaUltimoEnvio == nil || !e.FechaUltimoEnvio.After(previous) {
					t.Fatalf("expected a newer FechaUltimoEnvio")
				}
				if len(e.Bitacora) != before+1 {
					t.Fatalf("expected another bitácora entry on resend")
				}
				return e, nil
			},
		)
		notifier.EXPECT().DeliverReceipt(gomock.Any(), "5215512345678", gomock.Any()).Return(nil)

		if _, err := uc.SendReceipt(context.Background(), "esc-1", "maria"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unconfigured notifier keeps bookkeeping and reports failed delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Escritura) (entities.Escritura, error) {
				return e, nil
			},
		)

		got, err := uc.SendReceipt(context.Background(), "esc-1", "maria")
		if !errors.Is(err, ErrReceiptDeliveryFailed) {
			t.Fatalf("expected ErrReceiptDeliveryFailed, got %v", err)
		}
		if !got.ReciboEnviado || got.FechaUltimoEnvio == nil {
			t.Fatalf("bookkeeping must survive a missing notifier")
		}
	})

	t.Run("deleted between load and save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		notifier := mock_interfaces.NewMockIReceiptNotifier(ctrl)
		uc := NewEscrituraUseCase(repo, nil, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Escritura{}, nil)

		_, err := uc.SendReceipt(context.Background(), "esc-1", "maria")
		if !errors.Is(err, ErrEscrituraNotFound) {
			t.Fatalf("expected ErrEscrituraNotFound, got %v", err)
		}
	})

	t.Run("delivery failure keeps bookkeeping and reports it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		notifier := mock_interfaces.NewMockIReceiptNotifier(ctrl)
		uc := NewEscrituraUseCase(repo, nil, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "esc-1").Return(testEscritura(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Escritura) (entities.Escritura, error) {
				return e, nil
			},
		)
		notifier.EXPECT().DeliverReceipt(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("channel down"))

		got, err := uc.SendReceipt(context.Background(), "esc-1", "maria")
		if !errors.Is(err, ErrReceiptDeliveryFailed) {
			t.Fatalf("expected ErrReceiptDeliveryFailed, got %v", err)
		}
		if !got.ReciboEnviado || got.FechaUltimoEnvio == nil {
			t.Fatalf("bookkeeping must survive a delivery failure")
		}
	})
}

func TestEscrituraUseCase_DeleteByID(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		if err := uc.DeleteByID(context.Background(), "esc-1", ""); !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := NewEscrituraUseCase(nil, nil, nil)
		if err := uc.DeleteByID(context.Background(), "  ", "maria"); !errors.Is(err, ErrInvalidEscrituraID) {
			t.Fatalf("expected ErrInvalidEscrituraID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().DeleteByID(gomock.Any(), "esc-404").Return(false, nil)

		if err := uc.DeleteByID(context.Background(), "esc-404", "maria"); !errors.Is(err, ErrEscrituraNotFound) {
			t.Fatalf("expected ErrEscrituraNotFound, got %v", err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEscrituraRepository(ctrl)
		uc := NewEscrituraUseCase(repo, nil, nil)

		repo.EXPECT().DeleteByID(gomock.Any(), "esc-1").Return(true, nil)

		if err := uc.DeleteByID(context.Background(), "esc-1", "maria"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
