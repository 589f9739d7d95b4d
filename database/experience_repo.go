package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/gorm"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

type ExperienceFilter struct {
	Search  string // company, position, description
	Company string
	Start   DateRange
}

// FindAll returns all work experience in the given order
func (r *ExperienceRepo) FindAll(ctx context.Context, order Order) ([]*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.WithContext(ctx).Order(order.String()).Find(&experiences).Error
	return experiences, err
}

// FindMostRecent returns the first experience under order, or nil when there is none.
func (r *ExperienceRepo) FindMostRecent(ctx context.Context, order Order) (*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.WithContext(ctx).Order(order.String()).Limit(1).Find(&experiences).Error
	if err != nil || len(experiences) == 0 {
		return nil, err
	}
	return experiences[0], nil
}

func (r *ExperienceRepo) Search(ctx context.Context, filter ExperienceFilter, order Order) ([]*models.Experience, error) {
	q := applySearch(r.db.WithContext(ctx), filter.Search, "company", "position", "description")
	q = applyEquals(q, "company", filter.Company)
	q = applyRange(q, "start_date", filter.Start)

	var experiences []*models.Experience
	err := q.Order(order.String()).Find(&experiences).Error
	return experiences, err
}

func (r *ExperienceRepo) FindByID(ctx context.Context, id uint) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.WithContext(ctx).First(&experience, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("experience")
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

// FindByCompanyPosition looks an experience up by its natural key
func (r *ExperienceRepo) FindByCompanyPosition(ctx context.Context, company, position string) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.WithContext(ctx).
		Where("company = ? AND position = ?", company, position).
		First(&experience).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("experience")
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *ExperienceRepo) Add(ctx context.Context, experience *models.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

func (r *ExperienceRepo) Update(ctx context.Context, experience *models.Experience) error {
	result := r.db.WithContext(ctx).Model(experience).Select("*").Omit("id").Updates(experience)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("experience")
	}
	return nil
}

func (r *ExperienceRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Experience{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("experience")
	}
	return nil
}

func (r *ExperienceRepo) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(r.db.WithContext(ctx), &models.Experience{})
}

func (r *ExperienceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Experience{}).Count(&n).Error
	return n, err
}
