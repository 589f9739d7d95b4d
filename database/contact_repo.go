package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/gorm"
)

// ContactRepo is append-only: contact messages are never updated or deleted.
type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

type ContactFilter struct {
	Search  string // name, email, subject, message
	Created DateRange
}

// Add stores a submitted contact message
func (r *ContactRepo) Add(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *ContactRepo) FindAll(ctx context.Context, order Order) ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.WithContext(ctx).Order(order.String()).Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepo) Search(ctx context.Context, filter ContactFilter, order Order) ([]*models.Contact, error) {
	q := applySearch(r.db.WithContext(ctx), filter.Search, "name", "email", "subject", "message")
	q = applyRange(q, "created_date", filter.Created)

	var contacts []*models.Contact
	err := q.Order(order.String()).Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepo) FindByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).First(&contact, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("contact")
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Contact{}).Count(&n).Error
	return n, err
}
