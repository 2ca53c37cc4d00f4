package handlers

import (
	"net/http"

	"notaria_backoffice/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static catalogs the wizard renders: document
// types (with party labels) and the status list.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListTipos(c *gin.Context) {
	c.JSON(http.StatusOK, entities.TiposEscritura)
}

func (h *CatalogHandler) ListEstatus(c *gin.Context) {
	c.JSON(http.StatusOK, entities.EstatusCatalog)
}
