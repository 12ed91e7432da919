package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver/handlers"
	v1 "github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver/routes/v1"
)

// Provider aggregates route registrars.
type Provider struct {
	V1 *v1.Routes
}

// NewProvider wires the route registrars.
func NewProvider(handlerProvider *handlers.Provider, log zerolog.Logger) *Provider {
	return &Provider{
		V1: v1.NewRoutes(handlerProvider, log),
	}
}

// Register attaches every route under basePath.
func (p *Provider) Register(engine *gin.Engine, basePath string) {
	p.V1.Register(engine.Group(basePath))
}
