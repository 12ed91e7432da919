package wellbore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/norce-drilling/wellbore-api/internal/utils/platformerrors"
)

// Service describes the business logic surface for wellbore operations.
type Service interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	ListMetaInfo(ctx context.Context) ([]MetaInfo, error)
	List(ctx context.Context) ([]WellBore, error)
	Get(ctx context.Context, id uuid.UUID) (WellBore, error)
	Create(ctx context.Context, wb WellBore) error
	Update(ctx context.Context, id uuid.UUID, wb WellBore) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the wellbore service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "wellbore-service").Logger(),
	}
}

func (s *service) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, s.storageError(ctx, err, "list wellbore ids")
	}
	return ids, nil
}

func (s *service) ListMetaInfo(ctx context.Context) ([]MetaInfo, error) {
	infos, err := s.repo.ListMetaInfo(ctx)
	if err != nil {
		return nil, s.storageError(ctx, err, "list wellbore meta info")
	}
	return infos, nil
}

func (s *service) List(ctx context.Context) ([]WellBore, error) {
	wellBores, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.storageError(ctx, err, "list wellbores")
	}
	return wellBores, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (WellBore, error) {
	if id == uuid.Nil {
		return WellBore{}, invalid(ctx, "wellbore id must not be empty")
	}
	wb, err := s.repo.Get(ctx, id)
	if err != nil {
		return WellBore{}, s.lookupError(ctx, err, id, "get wellbore")
	}
	return wb, nil
}

func (s *service) Create(ctx context.Context, wb WellBore) error {
	if wb.ID() == uuid.Nil {
		return invalid(ctx, "wellbore metaInfo.id must not be empty")
	}
	if err := s.repo.Create(ctx, wb); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
				"wellbore already exists", err, map[string]any{"wellbore_id": wb.ID().String()})
		}
		return s.storageError(ctx, err, "create wellbore")
	}
	s.log.Info().Str("wellbore_id", wb.ID().String()).Msg("wellbore created")
	return nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, wb WellBore) error {
	if id == uuid.Nil {
		return invalid(ctx, "wellbore id must not be empty")
	}
	if wb.ID() != id {
		return invalid(ctx, "wellbore metaInfo.id must match the id in the path")
	}
	if err := s.repo.Update(ctx, wb); err != nil {
		return s.lookupError(ctx, err, id, "update wellbore")
	}
	s.log.Info().Str("wellbore_id", id.String()).Msg("wellbore updated")
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return invalid(ctx, "wellbore id must not be empty")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.lookupError(ctx, err, id, "delete wellbore")
	}
	s.log.Info().Str("wellbore_id", id.String()).Msg("wellbore deleted")
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, s.storageError(ctx, err, "count wellbores")
	}
	return count, nil
}

func invalid(ctx context.Context, message string) error {
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, message, nil)
}

func (s *service) lookupError(ctx context.Context, err error, id uuid.UUID, message string) error {
	if errors.Is(err, ErrNotFound) {
		return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"wellbore not found", err, map[string]any{"wellbore_id": id.String()})
	}
	return s.storageError(ctx, err, message)
}

func (s *service) storageError(ctx context.Context, err error, message string) error {
	s.log.Error().Err(err).Msg(message)
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeDatabaseError, message, err)
}
