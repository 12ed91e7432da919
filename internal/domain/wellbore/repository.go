package wellbore

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no wellbore has the requested id.
	ErrNotFound = errors.New("wellbore not found")
	// ErrAlreadyExists is returned when creating a wellbore whose id is taken.
	ErrAlreadyExists = errors.New("wellbore already exists")
)

// Repository exposes data access for WellBore entities.
type Repository interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	ListMetaInfo(ctx context.Context) ([]MetaInfo, error)
	List(ctx context.Context) ([]WellBore, error)
	Get(ctx context.Context, id uuid.UUID) (WellBore, error)
	Create(ctx context.Context, wb WellBore) error
	Update(ctx context.Context, wb WellBore) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
