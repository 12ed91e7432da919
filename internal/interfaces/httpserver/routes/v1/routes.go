package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates route registration for the wellbore API.
type Routes struct {
	handlers *handlers.Provider
	log      zerolog.Logger
}

// NewRoutes builds the route registrar.
func NewRoutes(handlerProvider *handlers.Provider, log zerolog.Logger) *Routes {
	return &Routes{
		handlers: handlerProvider,
		log:      log.With().Str("component", "http-routes").Logger(),
	}
}

// Register attaches the wellbore and usage statistics routes.
func (r *Routes) Register(router *gin.RouterGroup) {
	registerWellBoreRoutes(router, r.handlers.WellBore, r.handlers.Usage, r.log)
	registerUsageRoutes(router, r.handlers.Usage)
}
