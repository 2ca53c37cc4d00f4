package request

import (
	"errors"
	"strings"
	"time"

	"notaria_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMonto = errors.New("invalid monetary amount")
	ErrInvalidFecha = errors.New("invalid date")
)

// Monetary fields travel as decimal strings ("1000000.00"); JSON numbers
// would round-trip through binary floats.

type ParticipantRequest struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre" binding:"required"`
	Rol      string `json:"rol"`
	Telefono string `json:"telefono"`
	Side     string `json:"side" binding:"omitempty,oneof=A B"`
}

func (p ParticipantRequest) ToPersona() entities.Persona {
	side := entities.Side(p.Side)
	if side == "" {
		side = entities.SideA
	}
	return entities.Persona{
		ID:       p.ID,
		Nombre:   p.Nombre,
		RolLabel: p.Rol,
		Telefono: p.Telefono,
		Side:     side,
	}
}

// CreateEscrituraRequest is the wizard's final submission payload.
type CreateEscrituraRequest struct {
	Tipo            string               `json:"tipo" binding:"required"`
	FolioInterno    string               `json:"folio_interno" binding:"required"`
	NumeroEscritura string               `json:"numero_escritura" binding:"required"`
	FechaFirma      string               `json:"fecha_firma"`
	Notas           string               `json:"notas"`
	Estatus         string               `json:"estatus"`
	Participantes   []ParticipantRequest `json:"participantes"`
	ValorBase       string               `json:"valor_base"`
	Honorarios      string               `json:"honorarios"`
	ISR             string               `json:"isr"`
}

func (r CreateEscrituraRequest) ResolveMontos() (valorBase, honorarios, isr decimal.Decimal, err error) {
	if valorBase, err = resolveMonto(r.ValorBase); err != nil {
		return
	}
	if honorarios, err = resolveMonto(r.Honorarios); err != nil {
		return
	}
	isr, err = resolveMonto(r.ISR)
	return
}

func (r CreateEscrituraRequest) ResolveFechaFirma() (*time.Time, error) {
	return resolveFecha(r.FechaFirma)
}

func (r CreateEscrituraRequest) ResolveParticipantes() []entities.Persona {
	out := make([]entities.Persona, 0, len(r.Participantes))
	for _, p := range r.Participantes {
		out = append(out, p.ToPersona())
	}
	return out
}

type ParticipantPatchRequest struct {
	Nombre   *string `json:"nombre"`
	Rol      *string `json:"rol"`
	Telefono *string `json:"telefono"`
	Side     *string `json:"side" binding:"omitempty,oneof=A B"`
}

type ParticipantCommandRequest struct {
	Op    string                   `json:"op" binding:"required,oneof=add update remove"`
	ID    string                   `json:"id"`
	Data  *ParticipantRequest      `json:"data"`
	Patch *ParticipantPatchRequest `json:"patch"`
}

func (c ParticipantCommandRequest) ToCommand() entities.ParticipantCommand {
	cmd := entities.ParticipantCommand{
		Op: entities.ParticipantOp(c.Op),
		ID: c.ID,
	}
	if c.Data != nil {
		p := c.Data.ToPersona()
		cmd.Data = &p
	}
	if c.Patch != nil {
		patch := entities.PersonaPatch{
			Nombre:   c.Patch.Nombre,
			RolLabel: c.Patch.Rol,
			Telefono: c.Patch.Telefono,
		}
		if c.Patch.Side != nil {
			side := entities.Side(*c.Patch.Side)
			patch.Side = &side
		}
		cmd.Patch = &patch
	}
	return cmd
}

// UpdateEscrituraRequest patches general data; nil fields stay unchanged.
type UpdateEscrituraRequest struct {
	Tipo            *string                     `json:"tipo"`
	NumeroEscritura *string                     `json:"numero_escritura"`
	FechaFirma      *string                     `json:"fecha_firma"`
	Notas           *string                     `json:"notas"`
	Participantes   []ParticipantCommandRequest `json:"participantes"`
}

func (r UpdateEscrituraRequest) ResolveFechaFirma() (*time.Time, error) {
	if r.FechaFirma == nil {
		return nil, nil
	}
	return resolveFecha(*r.FechaFirma)
}

func (r UpdateEscrituraRequest) ResolveParticipantCommands() []entities.ParticipantCommand {
	out := make([]entities.ParticipantCommand, 0, len(r.Participantes))
	for _, c := range r.Participantes {
		out = append(out, c.ToCommand())
	}
	return out
}

type SetStatusRequest struct {
	Estatus string `json:"estatus" binding:"required"`
}

type BudgetRequest struct {
	ValorBase  string `json:"valor_base"`
	Honorarios string `json:"honorarios"`
	ISR        string `json:"isr"`
}

func (r BudgetRequest) ResolveMontos() (valorBase, honorarios, isr decimal.Decimal, err error) {
	if valorBase, err = resolveMonto(r.ValorBase); err != nil {
		return
	}
	if honorarios, err = resolveMonto(r.Honorarios); err != nil {
		return
	}
	isr, err = resolveMonto(r.ISR)
	return
}

func resolveMonto(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidMonto
	}
	return d, nil
}

// resolveFecha accepts a plain date or a full RFC 3339 timestamp, matching
// what the date picker submits.
func resolveFecha(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, ErrInvalidFecha
}
