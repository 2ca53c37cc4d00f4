package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"notaria_backoffice/internal/domain/entities"
	"notaria_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEscrituraNotFound     = errors.New("escritura not found")
	ErrInvalidEscrituraID    = errors.New("invalid escritura id")
	ErrInvalidActor          = errors.New("invalid actor")
	ErrInvalidTipo           = errors.New("invalid tipo de escritura")
	ErrInvalidStatus         = errors.New("invalid estatus")
	ErrEmptyFolio            = errors.New("folio interno is required")
	ErrEmptyNumeroEscritura  = errors.New("numero de escritura is required")
	ErrFolioAlreadyExists    = errors.New("folio interno already exists")
	ErrMissingPersonaA       = errors.New("at least one participant required")
	ErrMissingPersonaB       = errors.New("document type requires a second party")
	ErrMissingPhone          = errors.New("participant phone is required for receipt delivery")
	ErrReceiptDeliveryFailed = errors.New("receipt delivery failed")
)

// Audit action labels recorded in the bitácora.
const (
	actionCreacion     = "Creación de escritura"
	actionCambioStatus = "Cambio de estatus"
	actionEnvioRecibo  = "Envío de recibo"
	actionPresupuesto  = "Actualización de presupuesto"
	actionDatos        = "Actualización de datos"
)

// CreateEscrituraCommand carries the wizard's final submission.
type CreateEscrituraCommand struct {
	Tipo            entities.TipoEscritura
	FolioInterno    string
	NumeroEscritura string
	FechaFirma      *time.Time
	Notas           string
	Estatus         entities.EstatusEscritura
	Participantes   []entities.Persona
	ValorBase       decimal.Decimal
	Honorarios      decimal.Decimal
	ISR             decimal.Decimal
	Actor           string
}

// BudgetInput carries the raw monetary inputs of a recomputation.
type BudgetInput struct {
	ValorBase  decimal.Decimal
	Honorarios decimal.Decimal
	ISR        decimal.Decimal
}

// UpdateEscrituraCommand patches general data. Nil fields stay unchanged;
// participant edits go through the tagged command list.
type UpdateEscrituraCommand struct {
	Tipo            *entities.TipoEscritura
	NumeroEscritura *string
	FechaFirma      *time.Time
	Notas           *string
	Participantes   []entities.ParticipantCommand
	Actor           string
}

// IEscrituraUseCase exposes the escritura lifecycle operations.
//
// Each operation loads one aggregate, mutates it in memory and saves it
// back whole; failures before the save leave the stored aggregate untouched.

type IEscrituraUseCase interface {
	Create(ctx context.Context, cmd CreateEscrituraCommand) (entities.Escritura, error)
	GetByID(ctx context.Context, id string) (entities.Escritura, error)
	List(ctx context.Context, filter entities.EscrituraFilter) ([]entities.Escritura, error)
	Update(ctx context.Context, id string, cmd UpdateEscrituraCommand) (entities.Escritura, error)
	SetStatus(ctx context.Context, id string, estatus entities.EstatusEscritura, actor string) (entities.Escritura, error)
	UpdateBudget(ctx context.Context, id string, in BudgetInput, actor string) (entities.Escritura, error)
	SendReceipt(ctx context.Context, id, actor string) (entities.Escritura, error)
	DeleteByID(ctx context.Context, id, actor string) error
}

type EscrituraUseCase struct {
	repo     interfaces.IEscrituraRepository
	taxRepo  interfaces.ITaxConfigRepository
	notifier interfaces.IReceiptNotifier
}

var _ IEscrituraUseCase = (*EscrituraUseCase)(nil)

func NewEscrituraUseCase(repo interfaces.IEscrituraRepository, taxRepo interfaces.ITaxConfigRepository, notifier interfaces.IReceiptNotifier) *EscrituraUseCase {
	return &EscrituraUseCase{repo: repo, taxRepo: taxRepo, notifier: notifier}
}

func (u *EscrituraUseCase) Create(ctx context.Context, cmd CreateEscrituraCommand) (entities.Escritura, error) {
	actor := strings.TrimSpace(cmd.Actor)
	if actor == "" {
		return entities.Escritura{}, ErrInvalidActor
	}
	if !cmd.Tipo.IsValid() {
		return entities.Escritura{}, ErrInvalidTipo
	}

	folio := strings.TrimSpace(cmd.FolioInterno)
	if folio == "" {
		return entities.Escritura{}, ErrEmptyFolio
	}
	numero := strings.TrimSpace(cmd.NumeroEscritura)
	if numero == "" {
		return entities.Escritura{}, ErrEmptyNumeroEscritura
	}

	estatus := cmd.Estatus
	if estatus == "" {
		estatus = entities.EstatusPorLiquidar
	}
	if !estatus.IsValid() {
		return entities.Escritura{}, ErrInvalidStatus
	}

	participantes := normalizeParticipantes(cmd.Participantes)
	if err := validateParticipantes(cmd.Tipo, participantes); err != nil {
		return entities.Escritura{}, err
	}

	exists, err := u.repo.ExistsByFolio(ctx, folio)
	if err != nil {
		return entities.Escritura{}, err
	}
	if exists {
		return entities.Escritura{}, ErrFolioAlreadyExists
	}

	cfg, err := u.taxConfigSnapshot(ctx, cmd.Tipo)
	if err != nil {
		return entities.Escritura{}, err
	}

	budget, err := entities.ComputeBudget(cmd.Tipo, cmd.ValorBase, cmd.Honorarios, cmd.ISR, cfg)
	if err != nil {
		return entities.Escritura{}, err
	}

	now := time.Now().UTC()
	e := entities.Escritura{
		ID:              uuid.NewString(),
		NumeroEscritura: numero,
		FolioInterno:    folio,
		Tipo:            cmd.Tipo,
		Estatus:         estatus,
		FechaCreacion:   now,
		FechaFirma:      cmd.FechaFirma,
		Notas:           strings.TrimSpace(cmd.Notas),
		Participantes:   participantes,
		Presupuesto:     budget,
		ReciboEnviado:   false,
		UpdatedAt:       now,
	}
	e.AppendBitacora(actor, actionCreacion, "Se creó la escritura en el sistema")

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Escritura{}, err
	}
	log.WithFields(log.Fields{"escritura_id": created.ID, "folio": folio, "tipo": cmd.Tipo}).
		Info("[escritura][usecase] created")
	return created, nil
}

func (u *EscrituraUseCase) GetByID(ctx context.Context, id string) (entities.Escritura, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Escritura{}, ErrInvalidEscrituraID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Escritura{}, err
	}
	if e.ID == "" {
		return entities.Escritura{}, ErrEscrituraNotFound
	}
	return e, nil
}

func (u *EscrituraUseCase) List(ctx context.Context, filter entities.EscrituraFilter) ([]entities.Escritura, error) {
	if filter.Estatus != "" && !filter.Estatus.IsValid() {
		return nil, ErrInvalidStatus
	}
	if filter.Tipo != "" && !filter.Tipo.IsValid() {
		return nil, ErrInvalidTipo
	}
	return u.repo.List(ctx, filter)
}

func (u *EscrituraUseCase) SetStatus(ctx context.Context, id string, estatus entities.EstatusEscritura, actor string) (entities.Escritura, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.Escritura{}, ErrInvalidActor
	}
	// Catalog check happens before any load so an unknown status can never
	// touch the aggregate. Any catalog status is assignable from any other.
	if !estatus.IsValid() {
		return entities.Escritura{}, ErrInvalidStatus
	}

	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Escritura{}, err
	}

	e.Estatus = estatus
	e.UpdatedAt = time.Now().UTC()
	e.AppendBitacora(actor, actionCambioStatus, fmt.Sprintf("Estatus actualizado a %q", estatus.Label()))

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Escritura{}, err
	}
	if updated.ID == "" {
		return entities.Escritura{}, ErrEscrituraNotFound
	}
	log.WithFields(log.Fields{"escritura_id": e.ID, "estatus": estatus}).
		Info("[escritura][usecase] status changed")
	return updated, nil
}

func (u *EscrituraUseCase) UpdateBudget(ctx context.Context, id string, in BudgetInput, actor string) (entities.Escritura, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.Escritura{}, ErrInvalidActor
	}

	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Escritura{}, err
	}

	cfg, err := u.taxConfigSnapshot(ctx, e.Tipo)
	if err != nil {
		return entities.Escritura{}, err
	}
	budget, err := entities.ComputeBudget(e.Tipo, in.ValorBase, in.Honorarios, in.ISR, cfg)
	if err != nil {
		return entities.Escritura{}, err
	}

	e.Presupuesto = budget
	e.UpdatedAt = time.Now().UTC()
	e.AppendBitacora(actor, actionPresupuesto,
		fmt.Sprintf("Presupuesto recalculado, total $%s MXN", budget.Total.StringFixed(2)))

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Escritura{}, err
	}
	if updated.ID == "" {
		return entities.Escritura{}, ErrEscrituraNotFound
	}
	return updated, nil
}

func (u *EscrituraUseCase) Update(ctx context.Context, id string, cmd UpdateEscrituraCommand) (entities.Escritura, error) {
	actor := strings.TrimSpace(cmd.Actor)
	if actor == "" {
		return entities.Escritura{}, ErrInvalidActor
	}

	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Escritura{}, err
	}

	tipoChanged := false
	if cmd.Tipo != nil && *cmd.Tipo != e.Tipo {
		if !cmd.Tipo.IsValid() {
			return entities.Escritura{}, ErrInvalidTipo
		}
		e.Tipo = *cmd.Tipo
		tipoChanged = true
	}
	if cmd.NumeroEscritura != nil {
		numero := strings.TrimSpace(*cmd.NumeroEscritura)
		if numero == "" {
			return entities.Escritura{}, ErrEmptyNumeroEscritura
		}
		e.NumeroEscritura = numero
	}
	if cmd.FechaFirma != nil {
		e.FechaFirma = cmd.FechaFirma
	}
	if cmd.Notas != nil {
		e.Notas = strings.TrimSpace(*cmd.Notas)
	}

	if len(cmd.Participantes) > 0 {
		participantes, err := entities.ApplyParticipantCommands(e.Participantes, cmd.Participantes)
		if err != nil {
			return entities.Escritura{}, err
		}
		e.Participantes = participantes
	}
	if err := validateParticipantes(e.Tipo, e.Participantes); err != nil {
		return entities.Escritura{}, err
	}

	if tipoChanged {
		// A type change invalidates type-dependent parts of the budget, so
		// recompute from the surviving inputs. ISR is zeroed out when the
		// new type is not withholding-eligible rather than carried over.
		cfg, err := u.taxConfigSnapshot(ctx, e.Tipo)
		if err != nil {
			return entities.Escritura{}, err
		}
		isr := e.Presupuesto.ISR
		if !e.Tipo.WithholdingEligible() {
			isr = decimal.Zero
		}
		budget, err := entities.ComputeBudget(e.Tipo, e.Presupuesto.ValorBase, e.Presupuesto.Honorarios, isr, cfg)
		if err != nil {
			return entities.Escritura{}, err
		}
		e.Presupuesto = budget
	}

	e.UpdatedAt = time.Now().UTC()
	e.AppendBitacora(actor, actionDatos, "Se actualizaron los datos generales")

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Escritura{}, err
	}
	if updated.ID == "" {
		return entities.Escritura{}, ErrEscrituraNotFound
	}
	return updated, nil
}

// SendReceipt records the user's confirmed intent to send the receipt and
// then delegates delivery to the notifier. The bookkeeping (ReciboEnviado,
// FechaUltimoEnvio, bitácora entry) is committed first and survives a
// delivery failure, which is reported as ErrReceiptDeliveryFailed wrapping
// the cause. The operation is freely re-invocable: the resend flow stamps a
// new FechaUltimoEnvio and appends another entry.
func (u *EscrituraUseCase) SendReceipt(ctx context.Context, id, actor string) (entities.Escritura, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return entities.Escritura{}, ErrInvalidActor
	}

	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Escritura{}, err
	}

	personaA, ok := e.PersonaA()
	if !ok {
		return entities.Escritura{}, ErrMissingPersonaA
	}
	phone := strings.TrimSpace(personaA.Telefono)
	if phone == "" {
		return entities.Escritura{}, ErrMissingPhone
	}

	now := time.Now().UTC()
	e.ReciboEnviado = true
	e.FechaUltimoEnvio = &now
	e.UpdatedAt = now
	e.AppendBitacora(actor, actionEnvioRecibo,
		fmt.Sprintf("Recibo enviado a %s (%s)", personaA.Nombre, phone))

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Escritura{}, err
	}
	if updated.ID == "" {
		return entities.Escritura{}, ErrEscrituraNotFound
	}

	log.WithFields(log.Fields{"escritura_id": e.ID, "folio": e.FolioInterno}).
		Info("[receipt][usecase] send intent recorded")

	if u.notifier == nil {
		log.WithField("escritura_id", e.ID).
			Warn("[receipt][usecase] notifier not configured, message not delivered")
		return updated, fmt.Errorf("%w: notifier not configured", ErrReceiptDeliveryFailed)
	}
	if err := u.notifier.DeliverReceipt(ctx, phone, ReceiptMessage(updated)); err != nil {
		log.WithFields(log.Fields{"escritura_id": e.ID, "error": err}).
			Warn("[receipt][usecase] delivery failed after bookkeeping")
		return updated, fmt.Errorf("%w: %v", ErrReceiptDeliveryFailed, err)
	}
	return updated, nil
}

func (u *EscrituraUseCase) DeleteByID(ctx context.Context, id, actor string) error {
	if strings.TrimSpace(actor) == "" {
		return ErrInvalidActor
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEscrituraID
	}

	deleted, err := u.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEscrituraNotFound
	}
	log.WithFields(log.Fields{"escritura_id": id, "actor": actor}).
		Info("[escritura][usecase] deleted")
	return nil
}

// ReceiptMessage renders the receipt text delivered to the client.
func ReceiptMessage(e entities.Escritura) string {
	nombre := ""
	if p, ok := e.PersonaA(); ok {
		nombre = p.Nombre
	}
	return fmt.Sprintf(
		"Recibo de escritura #%s (folio %s). Cliente: %s. Total a pagar: $%s MXN.",
		e.NumeroEscritura, e.FolioInterno, nombre, e.Presupuesto.Total.StringFixed(2),
	)
}

// taxConfigSnapshot resolves the tax settings for a type, falling back to
// the default row. One call, one snapshot: a concurrent settings update can
// not bleed into a computation already in flight.
func (u *EscrituraUseCase) taxConfigSnapshot(ctx context.Context, tipo entities.TipoEscritura) (entities.TaxConfig, error) {
	cfg, found, err := u.taxRepo.Get(ctx, string(tipo))
	if err != nil {
		return entities.TaxConfig{}, err
	}
	if found {
		return cfg, nil
	}
	cfg, found, err = u.taxRepo.Get(ctx, interfaces.DefaultTaxConfigKey)
	if err != nil {
		return entities.TaxConfig{}, err
	}
	if !found {
		// No settings stored yet: all rates and fees default to zero, the
		// same starting point the settings screen shows.
		return entities.TaxConfig{}, nil
	}
	return cfg, nil
}

func normalizeParticipantes(participantes []entities.Persona) []entities.Persona {
	out := make([]entities.Persona, 0, len(participantes))
	for _, p := range participantes {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Side == "" {
			p.Side = entities.SideA
		}
		p.Nombre = strings.TrimSpace(p.Nombre)
		p.Telefono = strings.TrimSpace(p.Telefono)
		out = append(out, p)
	}
	return out
}

func validateParticipantes(tipo entities.TipoEscritura, participantes []entities.Persona) error {
	countA, countB := 0, 0
	for _, p := range participantes {
		switch p.Side {
		case entities.SideA:
			countA++
		case entities.SideB:
			countB++
		}
	}
	if countA < 1 {
		return ErrMissingPersonaA
	}
	if tipo.RequiresPersonaB() && countB < 1 {
		return ErrMissingPersonaB
	}
	return nil
}
