package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/metrics"
	"github.com/norce-drilling/wellbore-api/internal/utils/platformerrors"
)

// WellBoreHandler invokes domain logic for wellbore routes.
type WellBoreHandler struct {
	service wellbore.Service
}

// NewWellBoreHandler wires dependencies for wellbore routes.
func NewWellBoreHandler(service wellbore.Service) *WellBoreHandler {
	return &WellBoreHandler{service: service}
}

func (h *WellBoreHandler) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	return h.service.ListIDs(ctx)
}

func (h *WellBoreHandler) ListMetaInfo(ctx context.Context) ([]wellbore.MetaInfo, error) {
	return h.service.ListMetaInfo(ctx)
}

func (h *WellBoreHandler) List(ctx context.Context) ([]wellbore.WellBore, error) {
	return h.service.List(ctx)
}

func (h *WellBoreHandler) Get(ctx context.Context, rawID string) (wellbore.WellBore, error) {
	id, err := parseID(ctx, rawID)
	if err != nil {
		return wellbore.WellBore{}, err
	}
	return h.service.Get(ctx, id)
}

func (h *WellBoreHandler) Create(ctx context.Context, wb wellbore.WellBore) error {
	if err := h.service.Create(ctx, wb); err != nil {
		return err
	}
	metrics.WellBoresStored.Inc()
	return nil
}

func (h *WellBoreHandler) Update(ctx context.Context, rawID string, wb wellbore.WellBore) error {
	id, err := parseID(ctx, rawID)
	if err != nil {
		return err
	}
	return h.service.Update(ctx, id, wb)
}

func (h *WellBoreHandler) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(ctx, rawID)
	if err != nil {
		return err
	}
	if err := h.service.Delete(ctx, id); err != nil {
		return err
	}
	metrics.WellBoresStored.Dec()
	return nil
}

func parseID(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"wellbore id must be a UUID", err, map[string]any{"wellbore_id": raw})
	}
	return id, nil
}
