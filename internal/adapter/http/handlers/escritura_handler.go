package handlers

import (
	"errors"
	"net/http"

	request "notaria_backoffice/internal/adapter/http/dto/request"
	response "notaria_backoffice/internal/adapter/http/dto/response"
	"notaria_backoffice/internal/domain/entities"
	"notaria_backoffice/internal/usecase"
	"notaria_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEscrituraPayload = pkg.NewDomainErrorSimple("INVALID_ESCRITURA_INPUT", "Invalid escritura payload", http.StatusBadRequest)
)

// ActorKey is where the identity middleware stores the authenticated staff
// member's name for audit entries.
const ActorKey = "actor"

// EscrituraHandler handles HTTP requests for the escritura lifecycle.

type EscrituraHandler struct {
	usecase usecase.IEscrituraUseCase
}

func NewEscrituraHandler(uc usecase.IEscrituraUseCase) *EscrituraHandler {
	return &EscrituraHandler{usecase: uc}
}

// CreateEscritura handles the wizard's final submission: it computes the
// budget from the raw inputs and persists the new aggregate.
func (h *EscrituraHandler) CreateEscritura(c *gin.Context) {
	var payload request.CreateEscrituraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEscrituraPayload.HTTPStatus, errInvalidEscrituraPayload.ToHTTPError())
		return
	}

	valorBase, honorarios, isr, err := payload.ResolveMontos()
	if err != nil {
		c.JSON(errInvalidEscrituraPayload.HTTPStatus, errInvalidEscrituraPayload.ToHTTPError())
		return
	}
	fechaFirma, err := payload.ResolveFechaFirma()
	if err != nil {
		c.JSON(errInvalidEscrituraPayload.HTTPStatus, errInvalidEscrituraPayload.ToHTTPError())
		return
	}

	escritura, err := h.usecase.Create(c.Request.Context(), usecase.CreateEscrituraCommand{
		Tipo:            entities.TipoEscritura(payload.Tipo),
		FolioInterno:    payload.FolioInterno,
		NumeroEscritura: payload.NumeroEscritura,
		FechaFirma:      fechaFirma,
		Notas:           payload.Notas,
		Estatus:         entities.EstatusEscritura(payload.Estatus),
		Participantes:   payload.ResolveParticipantes(),
		ValorBase:       valorBase,
		Honorarios:      honorarios,
		ISR:             isr,
		Actor:           c.GetString(ActorKey),
	})
	if err != nil {
		appErr := mapEscrituraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEscritura(escritura))
}

func (h *EscrituraHandler) ListEscrituras(c *gin.Context) {
	filter := entities.EscrituraFilter{
		Estatus: entities.EstatusEscritura(c.Query("estatus")),
		Tipo:    entities.TipoEscritura(c.Query("tipo")),
	}

	escrituras, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapEscrituraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEscrituras(escrituras))
}

func (h *EscrituraHandler) GetEscritura(c *gin.Context) {
	escritura, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEscrituraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEscritura(escritura))
}

func (h *EscrituraHandler) UpdateEscritura(c *gin.Context) {
	var payload request.UpdateEscrituraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEscrituraPayload.HTTPStatus, errInvalidEscrituraPayload.ToHTTPError())
		return
	}

	fechaFirma, err := payload.ResolveFechaFirma()
	if err != nil {
		c.JSON(errInvalidEscrituraPayload.HTTPStatus, errInvalidEscrituraPayload.ToHTTPError())
		return
	}

	cmd := usecase.UpdateEscrituraCommand{
		NumeroEscritura: payload.NumeroEscritura,
		FechaFirma:      fechaFirma,
		Notas:           payload.Notas,
		Participantes:   payload.ResolveParticipantCommands(),
		Actor:           c.GetString(ActorKey),
	}
	if payload.Tipo != nil {
		tipo := entities.TipoEscritura(*payload.Tipo)
		cmd.Tipo = &tipo
	}

	escritura, err := h.usecase.Update(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		appErr := mapEscrituraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEscritura(escritura))
}

func (h *EscrituraHandler) SetStatus(c *gin.Context) {
	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEscrituraPayload.HTTPStatus, errInvalidEscrituraPayload.ToHTTPError())
		return
	}

	escritura, err := h.usecase.SetStatus(
		c.Request.Context(),
		c.Param("id"),
		entities.EstatusEscritura(payload.Estatus),
		c.GetString(ActorKey),
	)
	if err != nil {
		appErr := mapEscrituraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEscritura(escritura))
}

func (h *EscrituraHandler) UpdateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEscrituraPayload.HTTPStatus, errInvalidEscrituraPayload.ToHTTPError())
		return
	}

	valorBase, honorarios, isr, err := payload.ResolveMontos()
	if err != nil {
		c.JSON(errInvalidEscrituraPayload.HTTPStatus, errInvalidEscrituraPayload.ToHTTPError())
		return
	}

	escritura, err := h.usecase.UpdateBudget(c.Request.Context(), c.Param("id"), usecase.BudgetInput{
		ValorBase:  valorBase,
		Honorarios: honorarios,
		ISR:        isr,
	}, c.GetString(ActorKey))
	if err != nil {
		appErr := mapEscrituraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEscritura(escritura))
}

// SendReceipt records the confirmed send intent and hands the message to
// the channel. A delivery failure still returns 200: the bookkeeping is
// committed, so the client gets the updated escritura plus a warning
// instead of a hard error.
func (h *EscrituraHandler) SendReceipt(c *gin.Context) {
	escritura, err := h.usecase.SendReceipt(c.Request.Context(), c.Param("id"), c.GetString(ActorKey))
	if err != nil {
		if errors.Is(err, usecase.ErrReceiptDeliveryFailed) {
			c.JSON(http.StatusOK, response.SendReceiptResponse{
				Escritura: response.FromEscritura(escritura),
				Delivered: false,
				Warning:   "saved, but message delivery failed",
			})
			return
		}
		appErr := mapEscrituraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SendReceiptResponse{
		Escritura: response.FromEscritura(escritura),
		Delivered: true,
	})
}

func (h *EscrituraHandler) DeleteEscritura(c *gin.Context) {
	if err := h.usecase.DeleteByID(c.Request.Context(), c.Param("id"), c.GetString(ActorKey)); err != nil {
		appErr := mapEscrituraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapEscrituraError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEscrituraID),
		errors.Is(err, usecase.ErrInvalidTipo),
		errors.Is(err, usecase.ErrEmptyFolio),
		errors.Is(err, usecase.ErrEmptyNumeroEscritura),
		errors.Is(err, usecase.ErrMissingPhone),
		errors.Is(err, entities.ErrNegativeAmount),
		errors.Is(err, entities.ErrUnknownParticipantOp),
		errors.Is(err, entities.ErrParticipantNotFound):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPersonaA):
		return pkg.NewDomainErrorSimple("MISSING_PERSONA_A", "At least one participant required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPersonaB):
		return pkg.NewDomainErrorSimple("MISSING_PERSONA_B", "Document type requires a second party", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown estatus value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("MISSING_ACTOR", "Actor identity required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrFolioAlreadyExists):
		return pkg.NewDomainErrorSimple("FOLIO_ALREADY_EXISTS", "Folio interno already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrEscrituraNotFound):
		return pkg.NewDomainErrorSimple("ESCRITURA_NOT_FOUND", "Escritura not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
