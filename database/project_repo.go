package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectFilter narrows the admin project listing.
type ProjectFilter struct {
	Search   string // title, description, technologies
	Featured *bool
	Created  DateRange
}

// FindAll returns all projects in the given order
func (r *ProjectRepo) FindAll(ctx context.Context, order Order) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).Order(order.String()).Find(&projects).Error
	return projects, err
}

// FindFeatured returns at most limit featured projects in the given order
func (r *ProjectRepo) FindFeatured(ctx context.Context, limit int, order Order) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order(order.String()).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// Search returns the projects matching filter
func (r *ProjectRepo) Search(ctx context.Context, filter ProjectFilter, order Order) ([]*models.Project, error) {
	q := applySearch(r.db.WithContext(ctx), filter.Search, "title", "description", "technologies")
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	q = applyRange(q, "created_date", filter.Created)

	var projects []*models.Project
	err := q.Order(order.String()).Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByTitle looks a project up by its natural key
func (r *ProjectRepo) FindByTitle(ctx context.Context, title string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update overwrites every editable column of an existing project
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	result := r.db.WithContext(ctx).
		Model(project).
		Select("*").
		Omit("id", "created_date").
		Updates(project)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("project")
	}
	return nil
}

// SetFeatured flips the featured flag of one project
func (r *ProjectRepo) SetFeatured(ctx context.Context, id uint, featured bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Update("featured", featured)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("project")
	}
	return nil
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("project")
	}
	return nil
}

// DeleteAll removes every project and returns how many were deleted
func (r *ProjectRepo) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(r.db.WithContext(ctx), &models.Project{})
}

// Count returns the number of projects
func (r *ProjectRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&n).Error
	return n, err
}
