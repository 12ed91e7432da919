package handlers

import (
	"github.com/google/wire"

	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
	"github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	WellBore *WellBoreHandler
	Usage    *UsageHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(wellBoreService wellbore.Service, tracker *usage.Tracker) *Provider {
	return &Provider{
		WellBore: NewWellBoreHandler(wellBoreService),
		Usage:    NewUsageHandler(tracker),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(NewProvider)
