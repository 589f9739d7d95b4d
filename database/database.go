package database

import (
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/gorm"
)

type Database struct {
	db             *gorm.DB
	projectRepo    *ProjectRepo
	skillRepo      *SkillRepo
	experienceRepo *ExperienceRepo
	educationRepo  *EducationRepo
	contactRepo    *ContactRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:             db,
		projectRepo:    NewProjectRepo(db),
		skillRepo:      NewSkillRepo(db),
		experienceRepo: NewExperienceRepo(db),
		educationRepo:  NewEducationRepo(db),
		contactRepo:    NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

// DB returns the shared connection, for migrations and health checks.
func (d Database) DB() *gorm.DB {
	return d.db
}

func (d Database) Migrate() error {
	if d.db == nil {
		return errs.BadRequest("database is not initialized")
	}
	return models.Migrate(d.db)
}

// Transaction runs fn with a Database whose repositories share one transaction.
func (d Database) Transaction(fn func(tx Database) error) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Ping checks connectivity with the primary.
func (d Database) Ping() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errs.NewDatabaseError("open", "connection", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return errs.NewDatabaseError("ping", "connection", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
