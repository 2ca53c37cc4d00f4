package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// EstatusEscritura is one of the catalog of administrative statuses an
// escritura moves through. The catalog is ordered for display, but any
// catalog status may be assigned from any other one: staff use direct
// reassignment to correct mistakes, so no forward-only guard exists.

type EstatusEscritura string

const (
	EstatusPorLiquidar    EstatusEscritura = "por-liquidar"
	EstatusLiquidado      EstatusEscritura = "liquidado"
	EstatusProcesoPago    EstatusEscritura = "proceso-pago"
	EstatusRegistro       EstatusEscritura = "registro"
	EstatusProcesoEntrega EstatusEscritura = "proceso-entrega"
	EstatusEntregado      EstatusEscritura = "entregado"
)

type EstatusConfig struct {
	Value EstatusEscritura `json:"value"`
	Label string           `json:"label"`
}

var EstatusCatalog = []EstatusConfig{
	{Value: EstatusPorLiquidar, Label: "Pendiente de Pago"},
	{Value: EstatusLiquidado, Label: "Liquidado"},
	{Value: EstatusProcesoPago, Label: "Proceso de Pago"},
	{Value: EstatusRegistro, Label: "en Inscripción Registral"},
	{Value: EstatusProcesoEntrega, Label: "Proceso de Entrega"},
	{Value: EstatusEntregado, Label: "Entregado"},
}

var estatusByValue = func() map[EstatusEscritura]EstatusConfig {
	m := make(map[EstatusEscritura]EstatusConfig, len(EstatusCatalog))
	for _, ec := range EstatusCatalog {
		m[ec.Value] = ec
	}
	return m
}()

func (s EstatusEscritura) IsValid() bool {
	_, ok := estatusByValue[s]
	return ok
}

func (s EstatusEscritura) Label() string {
	if ec, ok := estatusByValue[s]; ok {
		return ec.Label
	}
	return string(s)
}

// Side distinguishes the two parties of a deed (A = grantor/buyer side,
// B = counterparty when the type requires one).
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Persona is a participant in the transaction.
type Persona struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	RolLabel string `json:"rol_label"`
	Telefono string `json:"telefono"`
	Side     Side   `json:"side"`
}

type AdjuntoStatus string

const (
	AdjuntoPending  AdjuntoStatus = "pending"
	AdjuntoUploaded AdjuntoStatus = "uploaded"
)

// Adjunto is attachment metadata only; the file content lives in external
// storage handled outside this service.
type Adjunto struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Size        int64         `json:"size"`
	ContentType string        `json:"content_type"`
	UploadedAt  time.Time     `json:"uploaded_at"`
	Status      AdjuntoStatus `json:"status"`
}

// BitacoraEntry is one row of the append-only audit trail. Entries are never
// mutated or removed; slice order is insertion order.
type BitacoraEntry struct {
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
	User   string    `json:"user"`
	Action string    `json:"action"`
	Detail string    `json:"detail"`
}

// Escritura is the aggregate root tracked through its administrative
// lifecycle. It is loaded fully into memory, mutated, and saved back as a
// whole; there are no partial updates.
type Escritura struct {
	ID               string           `json:"id"`
	NumeroEscritura  string           `json:"numero_escritura"`
	FolioInterno     string           `json:"folio_interno"`
	Tipo             TipoEscritura    `json:"tipo"`
	Estatus          EstatusEscritura `json:"estatus"`
	FechaCreacion    time.Time        `json:"fecha_creacion"`
	FechaFirma       *time.Time       `json:"fecha_firma,omitempty"`
	Notas            string           `json:"notas,omitempty"`
	Participantes    []Persona        `json:"participantes"`
	Presupuesto      Budget           `json:"presupuesto"`
	Adjuntos         []Adjunto        `json:"adjuntos,omitempty"`
	Bitacora         []BitacoraEntry  `json:"bitacora"`
	ReciboEnviado    bool             `json:"recibo_enviado"`
	FechaUltimoEnvio *time.Time       `json:"fecha_ultimo_envio,omitempty"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// PersonaA returns the first side-A participant, the client receipts are
// addressed to.
func (e Escritura) PersonaA() (Persona, bool) {
	for _, p := range e.Participantes {
		if p.Side == SideA {
			return p, true
		}
	}
	return Persona{}, false
}

func (e Escritura) CountBySide(s Side) int {
	n := 0
	for _, p := range e.Participantes {
		if p.Side == s {
			n++
		}
	}
	return n
}

// AppendBitacora adds one audit entry stamped now. Only ever appends.
func (e *Escritura) AppendBitacora(user, action, detail string) {
	e.Bitacora = append(e.Bitacora, BitacoraEntry{
		ID:     uuid.NewString(),
		At:     time.Now().UTC(),
		User:   user,
		Action: action,
		Detail: detail,
	})
}

// EscrituraFilter narrows list queries; empty fields mean "any".
type EscrituraFilter struct {
	Estatus EstatusEscritura
	Tipo    TipoEscritura
}

// ParticipantOp tags a ParticipantCommand variant.
type ParticipantOp string

const (
	ParticipantAdd    ParticipantOp = "add"
	ParticipantUpdate ParticipantOp = "update"
	ParticipantRemove ParticipantOp = "remove"
)

// PersonaPatch carries the fields of an update command; nil means "leave
// unchanged".
type PersonaPatch struct {
	Nombre   *string `json:"nombre,omitempty"`
	RolLabel *string `json:"rol_label,omitempty"`
	Telefono *string `json:"telefono,omitempty"`
	Side     *Side   `json:"side,omitempty"`
}

// ParticipantCommand is the single tagged-variant shape for participant
// edits: Add carries Data, Update carries ID+Patch, Remove carries ID.
type ParticipantCommand struct {
	Op    ParticipantOp `json:"op"`
	ID    string        `json:"id,omitempty"`
	Data  *Persona      `json:"data,omitempty"`
	Patch *PersonaPatch `json:"patch,omitempty"`
}

var (
	ErrUnknownParticipantOp = errors.New("unknown participant operation")
	ErrParticipantNotFound  = errors.New("participant not found")
)

// ApplyParticipantCommands reduces a command list over the participant slice
// and returns the new slice. The input slice is never mutated.
func ApplyParticipantCommands(participantes []Persona, cmds []ParticipantCommand) ([]Persona, error) {
	out := make([]Persona, len(participantes))
	copy(out, participantes)

	for _, cmd := range cmds {
		switch cmd.Op {
		case ParticipantAdd:
			if cmd.Data == nil {
				return nil, ErrUnknownParticipantOp
			}
			p := *cmd.Data
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			if p.Side == "" {
				p.Side = SideA
			}
			out = append(out, p)

		case ParticipantUpdate:
			if cmd.ID == "" || cmd.Patch == nil {
				return nil, ErrUnknownParticipantOp
			}
			idx := indexOfPersona(out, cmd.ID)
			if idx < 0 {
				return nil, ErrParticipantNotFound
			}
			p := out[idx]
			if cmd.Patch.Nombre != nil {
				p.Nombre = *cmd.Patch.Nombre
			}
			if cmd.Patch.RolLabel != nil {
				p.RolLabel = *cmd.Patch.RolLabel
			}
			if cmd.Patch.Telefono != nil {
				p.Telefono = *cmd.Patch.Telefono
			}
			if cmd.Patch.Side != nil {
				p.Side = *cmd.Patch.Side
			}
			out[idx] = p

		case ParticipantRemove:
			if cmd.ID == "" {
				return nil, ErrUnknownParticipantOp
			}
			idx := indexOfPersona(out, cmd.ID)
			if idx < 0 {
				return nil, ErrParticipantNotFound
			}
			out = append(out[:idx], out[idx+1:]...)

		default:
			return nil, ErrUnknownParticipantOp
		}
	}
	return out, nil
}

func indexOfPersona(list []Persona, id string) int {
	for i, p := range list {
		if p.ID == id {
			return i
		}
	}
	return -1
}
