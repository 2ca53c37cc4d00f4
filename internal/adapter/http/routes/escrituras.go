package routes

import (
	"net/http"
	"strings"

	"notaria_backoffice/internal/adapter/http/handlers"
	"notaria_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

const (
	PathEscrituras = "/escrituras"
	PathSettings   = "/settings"
	PathCatalog    = "/catalog"
)

func addEscrituraRoutes(rg *gin.RouterGroup, h *handlers.EscrituraHandler) {
	escrituras := rg.Group(PathEscrituras)
	{
		escrituras.GET("", h.ListEscrituras)
		escrituras.GET("/:id", h.GetEscritura)

		// Mutations carry the acting staff member's identity for the bitácora.
		escrituras.POST("", actorRequired(), h.CreateEscritura)
		escrituras.PATCH("/:id", actorRequired(), h.UpdateEscritura)
		escrituras.PATCH("/:id/status", actorRequired(), h.SetStatus)
		escrituras.PATCH("/:id/budget", actorRequired(), h.UpdateBudget)
		escrituras.POST("/:id/receipt", actorRequired(), h.SendReceipt)
		escrituras.DELETE("/:id", actorRequired(), h.DeleteEscritura)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("/taxes", h.GetTaxes)
		settings.PUT("/taxes", actorRequired(), h.PutTaxes)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/tipos", h.ListTipos)
		catalog.GET("/estatus", h.ListEstatus)
	}
}

// actorRequired lifts the authenticated staff identity (resolved by the
// session layer in front of this service) from the X-Actor header. Audit
// entries need a name; anonymous mutations are rejected.
func actorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader("X-Actor"))
		if actor == "" {
			appErr := pkg.NewDomainErrorSimple("MISSING_ACTOR", "Actor identity required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(handlers.ActorKey, actor)
		c.Next()
	}
}
