package response

import (
	"time"

	"notaria_backoffice/internal/domain/entities"
)

type ParticipantResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
	Telefono string `json:"telefono"`
	Side     string `json:"side"`
}

type BudgetResponse struct {
	ValorBase            string `json:"valor_base"`
	Traslado             string `json:"traslado"`
	DerechoRegistro      string `json:"derecho_registro"`
	CertificadoCatastral string `json:"certificado_catastral"`
	ConstanciasAdeudo    string `json:"constancias_adeudo"`
	Subtotal             string `json:"subtotal"`
	Honorarios           string `json:"honorarios"`
	ISR                  string `json:"isr"`
	Total                string `json:"total"`
}

type BitacoraResponse struct {
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
	User   string    `json:"user"`
	Action string    `json:"action"`
	Detail string    `json:"detail"`
}

type AdjuntoResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
	Status      string    `json:"status"`
}

type EscrituraResponse struct {
	ID               string                `json:"id"`
	NumeroEscritura  string                `json:"numero_escritura"`
	FolioInterno     string                `json:"folio_interno"`
	Tipo             string                `json:"tipo"`
	TipoLabel        string                `json:"tipo_label"`
	Estatus          string                `json:"estatus"`
	EstatusLabel     string                `json:"estatus_label"`
	FechaCreacion    time.Time             `json:"fecha_creacion"`
	FechaFirma       *time.Time            `json:"fecha_firma,omitempty"`
	Notas            string                `json:"notas,omitempty"`
	Participantes    []ParticipantResponse `json:"participantes"`
	Presupuesto      BudgetResponse        `json:"presupuesto"`
	Adjuntos         []AdjuntoResponse     `json:"adjuntos"`
	Bitacora         []BitacoraResponse    `json:"bitacora"`
	ReciboEnviado    bool                  `json:"recibo_enviado"`
	FechaUltimoEnvio *time.Time            `json:"fecha_ultimo_envio,omitempty"`
}

func FromEscritura(e entities.Escritura) EscrituraResponse {
	resp := EscrituraResponse{
		ID:               e.ID,
		NumeroEscritura:  e.NumeroEscritura,
		FolioInterno:     e.FolioInterno,
		Tipo:             string(e.Tipo),
		TipoLabel:        e.Tipo.Label(),
		Estatus:          string(e.Estatus),
		EstatusLabel:     e.Estatus.Label(),
		FechaCreacion:    e.FechaCreacion,
		FechaFirma:       e.FechaFirma,
		Notas:            e.Notas,
		Presupuesto:      FromBudget(e.Presupuesto),
		ReciboEnviado:    e.ReciboEnviado,
		FechaUltimoEnvio: e.FechaUltimoEnvio,
	}

	resp.Participantes = make([]ParticipantResponse, 0, len(e.Participantes))
	for _, p := range e.Participantes {
		resp.Participantes = append(resp.Participantes, ParticipantResponse{
			ID:       p.ID,
			Nombre:   p.Nombre,
			Rol:      p.RolLabel,
			Telefono: p.Telefono,
			Side:     string(p.Side),
		})
	}

	resp.Adjuntos = make([]AdjuntoResponse, 0, len(e.Adjuntos))
	for _, a := range e.Adjuntos {
		resp.Adjuntos = append(resp.Adjuntos, AdjuntoResponse{
			ID:          a.ID,
			Name:        a.Name,
			Size:        a.Size,
			ContentType: a.ContentType,
			UploadedAt:  a.UploadedAt,
			Status:      string(a.Status),
		})
	}

	resp.Bitacora = make([]BitacoraResponse, 0, len(e.Bitacora))
	for _, b := range e.Bitacora {
		resp.Bitacora = append(resp.Bitacora, BitacoraResponse{
			ID:     b.ID,
			At:     b.At,
			User:   b.User,
			Action: b.Action,
			Detail: b.Detail,
		})
	}
	return resp
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ValorBase:            b.ValorBase.StringFixed(2),
		Traslado:             b.Traslado.StringFixed(2),
		DerechoRegistro:      b.DerechoRegistro.StringFixed(2),
		CertificadoCatastral: b.CertificadoCatastral.StringFixed(2),
		ConstanciasAdeudo:    b.ConstanciasAdeudo.StringFixed(2),
		Subtotal:             b.Subtotal.StringFixed(2),
		Honorarios:           b.Honorarios.StringFixed(2),
		ISR:                  b.ISR.StringFixed(2),
		Total:                b.Total.StringFixed(2),
	}
}

func FromEscrituras(list []entities.Escritura) []EscrituraResponse {
	out := make([]EscrituraResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEscritura(e))
	}
	return out
}

// SendReceiptResponse wraps the updated escritura plus a non-blocking
// delivery warning when the message could not be handed to the channel.
type SendReceiptResponse struct {
	Escritura EscrituraResponse `json:"escritura"`
	Delivered bool              `json:"delivered"`
	Warning   string            `json:"warning,omitempty"`
}

type TaxConfigResponse struct {
	TrasladoPorcentaje   string `json:"traslado_porcentaje"`
	DerechoRegistro      string `json:"derecho_registro"`
	CertificadoCatastral string `json:"certificado_catastral"`
	ConstanciasAdeudo    string `json:"constancias_adeudo"`
}

func FromTaxConfig(cfg entities.TaxConfig) TaxConfigResponse {
	return TaxConfigResponse{
		TrasladoPorcentaje:   cfg.TrasladoPorcentaje.String(),
		DerechoRegistro:      cfg.DerechoRegistro.StringFixed(2),
		CertificadoCatastral: cfg.CertificadoCatastral.StringFixed(2),
		ConstanciasAdeudo:    cfg.ConstanciasAdeudo.StringFixed(2),
	}
}
