package entities

// TipoEscritura identifies a document type from the notary's catalog.
//
// The catalog drives three behaviors:
//   - whether the type requires a second party (PersonaBLabel non-empty)
//   - whether ISR withholding applies (compraventa and donacion only)
//   - which tax configuration row is used when computing a budget

type TipoEscritura string

const (
	TipoTestamento                    TipoEscritura = "testamento"
	TipoCompraventa                   TipoEscritura = "compraventa"
	TipoCompraventaGastosUrgentes     TipoEscritura = "cvgastos-urgentes"
	TipoDonacion                      TipoEscritura = "donacion"
	TipoAdjudicacionHerencia          TipoEscritura = "adjudicacion-concepto-herencia"
	TipoRectificacionSuperficie       TipoEscritura = "rectificacion-superficie"
	TipoFusionPredios                 TipoEscritura = "fusion-predios"
	TipoCancelacionUsufructoMuerte    TipoEscritura = "cancelacion-usufructo-muerte"
	TipoCancelacionUsufructoVoluntad  TipoEscritura = "cancelacion-usufructo-voluntaria"
	TipoServidumbrePaso               TipoEscritura = "servidumbre-paso"
	TipoDivisionCopropiedad           TipoEscritura = "division-copropiedad"
	TipoCancelacionReservaDominio     TipoEscritura = "cancelacion-reserva-dominio"
	TipoPoderNotarial                 TipoEscritura = "poder-notarial"
	TipoConstitucionAC                TipoEscritura = "constitucion-ac"
	TipoInftIndistintoNombre          TipoEscritura = "inft-indistinto-nombre"
	TipoInftConstruccionCasa          TipoEscritura = "inft-construccion-casahabitacion"
)

// TipoConfig is one catalog row. PersonaBLabel empty means the type involves
// a single party.
type TipoConfig struct {
	Value         TipoEscritura `json:"value"`
	Label         string        `json:"label"`
	Description   string        `json:"description"`
	PersonaALabel string        `json:"persona_a_label"`
	PersonaBLabel string        `json:"persona_b_label,omitempty"`
}

var TiposEscritura = []TipoConfig{
	{
		Value:         TipoTestamento,
		Label:         "Testamento",
		Description:   "Disposición de bienes para después del fallecimiento",
		PersonaALabel: "Testador",
	},
	{
		Value:         TipoCompraventaGastosUrgentes,
		Label:         "Compraventa por Gastos Urgentes",
		Description:   "Enajenación para cubrir gastos urgentes",
		PersonaALabel: "Comprador",
		PersonaBLabel: "Vendedor",
	},
	{
		Value:         TipoCompraventa,
		Label:         "Escritura de Compraventa",
		Description:   "Transferencia de propiedad mediante pago",
		PersonaALabel: "Comprador",
		PersonaBLabel: "Vendedor",
	},
	{
		Value:         TipoDonacion,
		Label:         "Donación",
		Description:   "Transferencia gratuita de bienes",
		PersonaALabel: "Donante",
		PersonaBLabel: "Donatario",
	},
	{
		Value:         TipoAdjudicacionHerencia,
		Label:         "Adjudicación por Concepto de Herencia (Intestamentaria o Testamentaria)",
		Description:   "Asignación de bienes heredados",
		PersonaALabel: "Heredero",
	},
	{
		Value:         TipoRectificacionSuperficie,
		Label:         "Rectificación de Superficie",
		Description:   "Corrección de medidas del inmueble",
		PersonaALabel: "Otorgante",
	},
	{
		Value:         TipoFusionPredios,
		Label:         "Fusión de Predios",
		Description:   "Unificación de dos o más inmuebles",
		PersonaALabel: "Otorgante",
	},
	{
		Value:         TipoCancelacionUsufructoMuerte,
		Label:         "Cancelación de Usufructo Vitalicio por Muerte",
		Description:   "Extinción del usufructo por fallecimiento",
		PersonaALabel: "Otorgante",
	},
	{
		Value:         TipoCancelacionUsufructoVoluntad,
		Label:         "Cancelación Voluntaria de Usufructo Vitalicio",
		Description:   "Renuncia expresa al derecho de usufructo",
		PersonaALabel: "Otorgante",
	},
	{
		Value:         TipoServidumbrePaso,
		Label:         "Servidumbre de Paso",
		Description:   "Derecho de tránsito sobre predio ajeno",
		PersonaALabel: "Otorgante",
	},
	{
		Value:         TipoDivisionCopropiedad,
		Label:         "División de Copropiedad",
		Description:   "Separación de derechos entre copropietarios",
		PersonaALabel: "Otorgante",
	},
	{
		Value:         TipoCancelacionReservaDominio,
		Label:         "Cancelación de Reserva de Dominio",
		Description:   "Liberación de dominio pleno",
		PersonaALabel: "Comprador",
		PersonaBLabel: "Vendedor",
	},
	{
		Value:         TipoPoderNotarial,
		Label:         "Poder Notarial",
		Description:   "Facultad legal para actuar en nombre de otro",
		PersonaALabel: "Poderante",
	},
	{
		Value:         TipoConstitucionAC,
		Label:         "Constitución de Asociación Civil",
		Description:   "Creación de una Asociación Civil",
		PersonaALabel: "Asociado",
	},
	{
		Value:         TipoInftIndistintoNombre,
		Label:         "Información Testimonial para Acreditar Uso Indistinto de Nombre",
		Description:   "Acreditación por testimonios del uso indistinto de dos o más nombres respecto de un inmueble",
		PersonaALabel: "Otorgante",
	},
	{
		Value:         TipoInftConstruccionCasa,
		Label:         "Información Testimonial para Acreditar Construcción de Casa Habitación",
		Description:   "Acreditación por testimonios de la existencia y antigüedad de una construcción de casa habitación",
		PersonaALabel: "Otorgante",
	},
}

var tiposByValue = func() map[TipoEscritura]TipoConfig {
	m := make(map[TipoEscritura]TipoConfig, len(TiposEscritura))
	for _, tc := range TiposEscritura {
		m[tc.Value] = tc
	}
	return m
}()

func TipoConfigFor(t TipoEscritura) (TipoConfig, bool) {
	tc, ok := tiposByValue[t]
	return tc, ok
}

func (t TipoEscritura) IsValid() bool {
	_, ok := tiposByValue[t]
	return ok
}

// RequiresPersonaB reports whether the type mandates a second party.
func (t TipoEscritura) RequiresPersonaB() bool {
	tc, ok := tiposByValue[t]
	return ok && tc.PersonaBLabel != ""
}

// WithholdingEligible reports whether ISR withholding applies to the type.
// It is charged to the seller/donor side, so only transfer-for-value and
// donation deeds qualify.
func (t TipoEscritura) WithholdingEligible() bool {
	return t == TipoCompraventa || t == TipoDonacion
}

func (t TipoEscritura) Label() string {
	if tc, ok := tiposByValue[t]; ok {
		return tc.Label
	}
	return string(t)
}
