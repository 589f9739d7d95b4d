package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/gorm"
)

type EducationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{db}
}

type EducationFilter struct {
	Search      string // institution, degree, field_of_study
	Institution string
	Start       DateRange
}

// FindAll returns all education entries in the given order
func (r *EducationRepo) FindAll(ctx context.Context, order Order) ([]*models.Education, error) {
	var education []*models.Education
	err := r.db.WithContext(ctx).Order(order.String()).Find(&education).Error
	return education, err
}

func (r *EducationRepo) Search(ctx context.Context, filter EducationFilter, order Order) ([]*models.Education, error) {
	q := applySearch(r.db.WithContext(ctx), filter.Search, "institution", "degree", "field_of_study")
	q = applyEquals(q, "institution", filter.Institution)
	q = applyRange(q, "start_date", filter.Start)

	var education []*models.Education
	err := q.Order(order.String()).Find(&education).Error
	return education, err
}

func (r *EducationRepo) FindByID(ctx context.Context, id uint) (*models.Education, error) {
	var education models.Education
	err := r.db.WithContext(ctx).First(&education, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("education")
	}
	if err != nil {
		return nil, err
	}
	return &education, nil
}

// FindByNaturalKey looks an entry up by institution, degree and field of study
func (r *EducationRepo) FindByNaturalKey(ctx context.Context, institution, degree, fieldOfStudy string) (*models.Education, error) {
	var education models.Education
	err := r.db.WithContext(ctx).
		Where("institution = ? AND degree = ? AND field_of_study = ?", institution, degree, fieldOfStudy).
		First(&education).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("education")
	}
	if err != nil {
		return nil, err
	}
	return &education, nil
}

func (r *EducationRepo) Add(ctx context.Context, education *models.Education) error {
	return r.db.WithContext(ctx).Create(education).Error
}

func (r *EducationRepo) Update(ctx context.Context, education *models.Education) error {
	result := r.db.WithContext(ctx).Model(education).Select("*").Omit("id").Updates(education)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("education")
	}
	return nil
}

func (r *EducationRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Education{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("education")
	}
	return nil
}

func (r *EducationRepo) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(r.db.WithContext(ctx), &models.Education{})
}

func (r *EducationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Education{}).Count(&n).Error
	return n, err
}
