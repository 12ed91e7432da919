package wellbore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	domain "github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
)

// InMemoryRepository is a thread-safe repository for DB_DRIVER=memory and tests.
// Documents are stored encoded so callers never share pointers with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	docs  map[uuid.UUID][]byte
}

var _ domain.Repository = (*InMemoryRepository)(nil)

// NewInMemoryRepository returns an empty repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{docs: make(map[uuid.UUID][]byte)}
}

func (r *InMemoryRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uuid.UUID, len(r.order))
	copy(ids, r.order)
	return ids, nil
}

func (r *InMemoryRepository) ListMetaInfo(ctx context.Context) ([]domain.MetaInfo, error) {
	wellBores, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]domain.MetaInfo, 0, len(wellBores))
	for _, wb := range wellBores {
		infos = append(infos, *wb.MetaInfo)
	}
	return infos, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]domain.WellBore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wellBores := make([]domain.WellBore, 0, len(r.order))
	for _, id := range r.order {
		wb, err := decode(r.docs[id])
		if err != nil {
			return nil, err
		}
		wellBores = append(wellBores, wb)
	}
	return wellBores, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id uuid.UUID) (domain.WellBore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return domain.WellBore{}, domain.ErrNotFound
	}
	return decode(doc)
}

func (r *InMemoryRepository) Create(ctx context.Context, wb domain.WellBore) error {
	doc, err := json.Marshal(wb)
	if err != nil {
		return fmt.Errorf("encode wellbore: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := wb.ID()
	if _, exists := r.docs[id]; exists {
		return domain.ErrAlreadyExists
	}
	r.docs[id] = doc
	r.order = append(r.order, id)
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, wb domain.WellBore) error {
	doc, err := json.Marshal(wb)
	if err != nil {
		return fmt.Errorf("encode wellbore: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := wb.ID()
	if _, exists := r.docs[id]; !exists {
		return domain.ErrNotFound
	}
	r.docs[id] = doc
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[id]; !exists {
		return domain.ErrNotFound
	}
	delete(r.docs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.docs)), nil
}

func decode(doc []byte) (domain.WellBore, error) {
	var wb domain.WellBore
	if err := json.Unmarshal(doc, &wb); err != nil {
		return domain.WellBore{}, fmt.Errorf("decode wellbore: %w", err)
	}
	return wb, nil
}
