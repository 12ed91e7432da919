package wellbore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/database/entities"
)

// GormRepository persists wellbores via GORM on PostgreSQL or SQLite.
type GormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*GormRepository)(nil)

// NewGormRepository creates a repository backed by the provided DB.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var raw []string
	err := r.db.WithContext(ctx).
		Model(&entities.WellBore{}).
		Order("created_at, id").
		Pluck("id", &raw).Error
	if err != nil {
		return nil, fmt.Errorf("select wellbore ids: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse wellbore id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *GormRepository) ListMetaInfo(ctx context.Context) ([]domain.MetaInfo, error) {
	var records []entities.WellBore
	err := r.db.WithContext(ctx).
		Select("id", "meta_info").
		Order("created_at, id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("select wellbore meta info: %w", err)
	}

	infos := make([]domain.MetaInfo, 0, len(records))
	for _, record := range records {
		var info domain.MetaInfo
		if err := json.Unmarshal(record.MetaInfo, &info); err != nil {
			return nil, fmt.Errorf("decode meta info of %s: %w", record.ID, err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (r *GormRepository) List(ctx context.Context) ([]domain.WellBore, error) {
	var records []entities.WellBore
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("select wellbores: %w", err)
	}

	wellBores := make([]domain.WellBore, 0, len(records))
	for _, record := range records {
		wb, err := toDomain(record)
		if err != nil {
			return nil, err
		}
		wellBores = append(wellBores, wb)
	}
	return wellBores, nil
}

func (r *GormRepository) Get(ctx context.Context, id uuid.UUID) (domain.WellBore, error) {
	var record entities.WellBore
	err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.WellBore{}, domain.ErrNotFound
		}
		return domain.WellBore{}, fmt.Errorf("select wellbore: %w", err)
	}
	return toDomain(record)
}

func (r *GormRepository) Create(ctx context.Context, wb domain.WellBore) error {
	record, err := toEntity(wb)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.WellBore{}).Where("id = ?", record.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("check wellbore: %w", err)
		}
		if count > 0 {
			return domain.ErrAlreadyExists
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("insert wellbore: %w", err)
		}
		return nil
	})
}

func (r *GormRepository) Update(ctx context.Context, wb domain.WellBore) error {
	record, err := toEntity(wb)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.WellBore{}).
			Where("id = ?", record.ID).
			Updates(map[string]any{
				"meta_info":           record.MetaInfo,
				"well_id":             record.WellID,
				"rig_id":              record.RigID,
				"is_sidetrack":        record.IsSidetrack,
				"parent_well_bore_id": record.ParentWellBoreID,
				"data":                record.Data,
			})
		if result.Error != nil {
			return fmt.Errorf("update wellbore: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id.String()).Delete(&entities.WellBore{})
		if result.Error != nil {
			return fmt.Errorf("delete wellbore: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.WellBore{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count wellbores: %w", err)
	}
	return count, nil
}

func toEntity(wb domain.WellBore) (entities.WellBore, error) {
	metaInfo, err := json.Marshal(wb.MetaInfo)
	if err != nil {
		return entities.WellBore{}, fmt.Errorf("encode meta info: %w", err)
	}
	data, err := json.Marshal(wb)
	if err != nil {
		return entities.WellBore{}, fmt.Errorf("encode wellbore: %w", err)
	}
	return entities.WellBore{
		ID:               wb.ID().String(),
		MetaInfo:         datatypes.JSON(metaInfo),
		WellID:           uuidString(wb.WellID),
		RigID:            uuidString(wb.RigID),
		IsSidetrack:      wb.IsSidetrack,
		ParentWellBoreID: uuidString(wb.ParentWellBoreID),
		Data:             datatypes.JSON(data),
	}, nil
}

func toDomain(record entities.WellBore) (domain.WellBore, error) {
	var wb domain.WellBore
	if err := json.Unmarshal(record.Data, &wb); err != nil {
		return domain.WellBore{}, fmt.Errorf("decode wellbore %s: %w", record.ID, err)
	}
	if wb.ID().String() != record.ID {
		return domain.WellBore{}, fmt.Errorf("wellbore row %s holds a document for %s", record.ID, wb.ID())
	}
	return wb, nil
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
