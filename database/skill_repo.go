package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

type SkillFilter struct {
	Search   string // name, category
	Category string
}

// FindAll returns all skills in the given order
func (r *SkillRepo) FindAll(ctx context.Context, order Order) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.WithContext(ctx).Order(order.String()).Find(&skills).Error
	return skills, err
}

func (r *SkillRepo) Search(ctx context.Context, filter SkillFilter, order Order) ([]*models.Skill, error) {
	q := applySearch(r.db.WithContext(ctx), filter.Search, "name", "category")
	q = applyEquals(q, "category", filter.Category)

	var skills []*models.Skill
	err := q.Order(order.String()).Find(&skills).Error
	return skills, err
}

func (r *SkillRepo) FindByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).First(&skill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("skill")
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepo) FindByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("skill")
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepo) Add(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *SkillRepo) Update(ctx context.Context, skill *models.Skill) error {
	result := r.db.WithContext(ctx).Model(skill).Select("*").Omit("id").Updates(skill)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("skill")
	}
	return nil
}

func (r *SkillRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("skill")
	}
	return nil
}

func (r *SkillRepo) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(r.db.WithContext(ctx), &models.Skill{})
}

func (r *SkillRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Skill{}).Count(&n).Error
	return n, err
}
