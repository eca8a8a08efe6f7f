package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"soulprint/internal/models/db_models"
	"soulprint/internal/models/request_models"
)

type DestinationRepository interface {
	Create(ctx context.Context, d *db_models.Destination) error
	Update(ctx context.Context, d *db_models.Destination) error
	Delete(ctx context.Context, id string) (bool, error)

	GetByID(ctx context.Context, id string) (*db_models.Destination, error)
	GetByIDs(ctx context.Context, ids []string) ([]db_models.Destination, error)
	List(ctx context.Context, filter request_models.DestinationFilter, page, pageSize int) ([]db_models.Destination, error)
	ListAll(ctx context.Context, filter request_models.DestinationFilter) ([]db_models.Destination, error)
	Similar(ctx context.Context, d *db_models.Destination, limit int) ([]SimilarRow, error)
}

type SimilarRow struct {
	db_models.Destination
	Distance float64 `gorm:"column:distance"`
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, d *db_models.Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *destinationRepository) Update(ctx context.Context, d *db_models.Destination) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&db_models.Destination{}).Where("id = ?", d.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Select("*").Omit("created_at").Save(d).Error
	})
}

// Delete reports whether a row was removed. Matches cascade.
func (r *destinationRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Destination{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var d db_models.Destination
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *destinationRepository) GetByIDs(ctx context.Context, ids []string) ([]db_models.Destination, error) {
	var out []db_models.Destination
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *destinationRepository) filtered(ctx context.Context, filter request_models.DestinationFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&db_models.Destination{})
	if filter.ActiveOnly {
		q = q.Where("active = ?", true)
	}
	if filter.Region != "" {
		q = q.Where("region = ?", filter.Region)
	}
	if filter.Tier != "" {
		q = q.Where("tier = ?", filter.Tier)
	}
	return q
}

func (r *destinationRepository) List(ctx context.Context, filter request_models.DestinationFilter, page, pageSize int) ([]db_models.Destination, error) {
	var out []db_models.Destination
	err := r.filtered(ctx, filter).
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&out).Error
	return out, err
}

func (r *destinationRepository) ListAll(ctx context.Context, filter request_models.DestinationFilter) ([]db_models.Destination, error) {
	var out []db_models.Destination
	err := r.filtered(ctx, filter).Order("id ASC").Find(&out).Error
	return out, err
}

// Similar orders active destinations by euclidean distance between profile
// vectors, excluding d itself.
func (r *destinationRepository) Similar(ctx context.Context, d *db_models.Destination, limit int) ([]SimilarRow, error) {
	var rows []SimilarRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT *, (profile_vector <-> ?) AS distance
		FROM destinations
		WHERE id <> ? AND active = TRUE
		ORDER BY profile_vector <-> ?, id ASC
		LIMIT ?`,
		d.ProfileVector, d.ID, d.ProfileVector, limit,
	).Scan(&rows).Error
	return rows, err
}
