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

// SettingsHandler exposes the tax configuration feature. The optional
// `tipo` query selects a per-type row; absent means the shared default row.

type SettingsHandler struct {
	usecase usecase.ITaxConfigUseCase
}

func NewSettingsHandler(uc usecase.ITaxConfigUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetTaxes(c *gin.Context) {
	cfg, err := h.usecase.GetForTipo(c.Request.Context(), c.Query("tipo"))
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTaxConfig(cfg))
}

func (h *SettingsHandler) PutTaxes(c *gin.Context) {
	var payload request.TaxConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_TAX_INPUT", "Invalid tax settings payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cfg, err := payload.Resolve()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_TAX_INPUT", "Invalid tax settings payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Upsert(c.Request.Context(), c.Query("tipo"), cfg)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTaxConfig(updated))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTipo), errors.Is(err, entities.ErrNegativeAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
